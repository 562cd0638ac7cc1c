package categorizer

const (
	// DefaultClass is assigned when no product class keyword matches.
	DefaultClass = "Miscellaneous"
	// DefaultSubclass is assigned when no product subclass keyword matches.
	DefaultSubclass = "Other"
)

var productClassRules = []KeywordRule{
	{Label: "Home Decor", Keywords: []string{
		"lantern", "mirror", "clock", "candle", "t-light", "ornament",
		"doormat", "rug", "cushion", "garland", "wreath", "sign",
		"frame", "plant", "vase", "platter", "planter", "hook", "cabinet",
		"shelf", "stand", "basket",
	}},
	{Label: "Kitchenware", Keywords: []string{
		"mug", "cup", "saucer", "teaspoon", "spoon", "bowl", "plate",
		"jug", "coaster", "napkin", "cutlery", "baking", "cookie cutter",
		"oven glove", "apron", "tea cosy", "teapot", "kettle",
	}},
	{Label: "Toys & Games", Keywords: []string{
		"doll", "toy", "jigsaw", "puzzle", "game", "marbles", "ludo",
		"skittles", "rocket", "model", "balloon", "marble", "board game",
	}},
	{Label: "Stationery & Craft", Keywords: []string{
		"notebook", "journal", "sketchbook", "pen", "pencil", "eraser",
		"sticker", "card", "envelope", "ribbon", "tissue", "wrap",
		"paint", "marker", "chalk", "craft", "incense", "stencil", "bead",
	}},
	{Label: "Bags & Luggage", Keywords: []string{
		"bag", "tote", "backpack", "luggage", "passport cover", "tag",
		"umbrella", "case", "purse", "wallet", "satchel",
	}},
	{Label: "Storage & Organization", Keywords: []string{
		"box", "container", "organiser", "organizer", "rack", "stand",
		"crate", "holder", "tin", "drawer",
	}},
	{Label: "Personal Accessories", Keywords: []string{
		"scarf", "hat", "glove", "necklace", "bracelet", "earring",
		"ring", "bangle", "hair", "mirror", "key ring", "cufflink",
	}},
	{Label: "Garden & Outdoor", Keywords: []string{
		"garden", "plant", "watering can", "birdcage", "birdhouse",
		"thermometer", "bench", "planter", "parasol", "spade", "rake",
		"trowel", "hose",
	}},
	{Label: "Textiles", Keywords: []string{
		"cushion", "blanket", "throw", "towel", "quilt", "scarf", "rug",
	}},
	{Label: "Seasonal & Holiday", Keywords: []string{
		"christmas", "easter", "valentine", "halloween", "advent",
		"festive", "gift", "stocking",
	}},
}

// "Candle Set" keeps its generic "set of"/"box of" triggers as shipped.
var productSubclassRules = []KeywordRule{
	{Label: "Lantern", Keywords: []string{"lantern"}},
	{Label: "T-Light Holder", Keywords: []string{"t-light", "tealight", "t light", "t-light holder"}},
	{Label: "Candle", Keywords: []string{"candle", "votive", "pillar", "wick"}},
	{Label: "Clock", Keywords: []string{"clock", "alarm clock", "wall clock", "table clock"}},
	{Label: "Picture Frame", Keywords: []string{"frame", "photo frame", "cornice"}},
	{Label: "Mirror", Keywords: []string{"mirror"}},
	{Label: "Basket", Keywords: []string{"basket", "crate"}},
	{Label: "Cabinet", Keywords: []string{"cabinet", "drawer", "shelf"}},
	{Label: "Jug", Keywords: []string{"jug", "pitcher"}},
	{Label: "Mug", Keywords: []string{"mug", "cup", "beaker", "teacup"}},
	{Label: "Bowl", Keywords: []string{"bowl"}},
	{Label: "Plate", Keywords: []string{"plate", "platter"}},
	{Label: "Coaster", Keywords: []string{"coaster"}},
	{Label: "Cutlery Set", Keywords: []string{"cutlery"}},
	{Label: "Teaspoon", Keywords: []string{"teaspoon", "spoon"}},
	{Label: "Apron", Keywords: []string{"apron"}},
	{Label: "Oven Glove", Keywords: []string{"oven glove", "oven mitt"}},
	{Label: "Cookie Cutter", Keywords: []string{"cookie cutter"}},
	{Label: "Doll", Keywords: []string{"doll"}},
	{Label: "Soft Toy", Keywords: []string{"soft toy", "toy"}},
	{Label: "Game", Keywords: []string{"game", "ludo", "skittles", "board game"}},
	{Label: "Puzzle", Keywords: []string{"jigsaw", "puzzle"}},
	{Label: "Notebook", Keywords: []string{"notebook", "journal", "sketchbook", "pad"}},
	{Label: "Pen/Pencil", Keywords: []string{"pen", "pencil", "marker"}},
	{Label: "Sticker", Keywords: []string{"sticker"}},
	{Label: "Card", Keywords: []string{"card", "postcard", "greeting card"}},
	{Label: "Gift Wrap", Keywords: []string{"wrap", "gift bag", "ribbon", "gift tape"}},
	{Label: "Doormat", Keywords: []string{"doormat"}},
	{Label: "Sign", Keywords: []string{"sign", "metal sign", "wall art"}},
	{Label: "Organiser", Keywords: []string{"organiser", "organizer", "tidy"}},
	{Label: "Thermometer", Keywords: []string{"thermometer"}},
	{Label: "Key Ring", Keywords: []string{"key ring", "key fob"}},
	{Label: "Umbrella", Keywords: []string{"umbrella", "parasol"}},
	{Label: "Baking Case", Keywords: []string{"cake case", "baking case"}},
	{Label: "Candle Set", Keywords: []string{"set of", "box of"}},
}

var (
	defaultClassTable    = NewKeywordTable(DefaultClass, productClassRules)
	defaultSubclassTable = NewKeywordTable(DefaultSubclass, productSubclassRules)
)

// ProductClassTable returns the built-in product class table.
func ProductClassTable() *KeywordTable { return defaultClassTable }

// ProductSubclassTable returns the built-in product subclass table.
func ProductSubclassTable() *KeywordTable { return defaultSubclassTable }
