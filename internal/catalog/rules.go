package catalog

// ruleSeed is the rule tag table. ExampleQuestionIDs are filled in by build.
var ruleSeed = []RuleTag{
	{
		ID:          "opening-01",
		Chapter:     ChapterOpening,
		Title:       "Swap from the middle, void the shortest suit",
		Mnemonic:    "Swap middle tiles first; void the suit you hold least of",
		Description: "Swap out 4-6 middle tiles, void the suit with the fewest tiles, and keep one tile back to mislead opponents when useful.",
	},
	{
		ID:          "opening-02",
		Chapter:     ChapterOpening,
		Title:       "Clear the void suit in the first three turns",
		Mnemonic:    "An uncleared void suit is a deal-in waiting to happen",
		Description: "Discard the void suit in the first three turns so you are never forced to feed it late.",
	},
	{
		ID:          "opening-03",
		Chapter:     ChapterOpening,
		Title:       "Middle tiles are ammunition, edges and pairs are hidden blades",
		Mnemonic:    "Middle tiles can go; edge tiles and pairs stay",
		Description: "Middle tiles connect better for others, while edge tiles and pairs are more stable in your own hand.",
	},
	{
		ID:          "opening-04",
		Chapter:     ChapterOpening,
		Title:       "Golden 3, silver 7, stinking 2 and 8",
		Mnemonic:    "Keep 3 and 7, shed 2 and 8 early",
		Description: "3 and 7 connect on both sides; 2 and 8 connect poorly, so deal with them first.",
	},
	{
		ID:          "midgame-01",
		Chapter:     ChapterMidgame,
		Title:       "1-4-7 cut the 1, 2-5-8 cut the 5, 3-6-9 cut the 9",
		Mnemonic:    "Keep the middle, drop the edge; keep tiles with more neighbours",
		Description: "Follow the suji lines and keep the middle tiles that form runs most easily.",
	},
	{
		ID:          "midgame-02",
		Chapter:     ChapterMidgame,
		Title:       "Break edges before gaps, keep middles before edges",
		Mnemonic:    "Break 12 and 89 before 35 and 46",
		Description: "Edge partial sets are inefficient; gap and middle shapes are worth more.",
	},
	{
		ID:          "midgame-03",
		Chapter:     ChapterMidgame,
		Title:       "Few partial sets: drop edge tiles; many: break edge pairs",
		Mnemonic:    "Count your partial sets before breaking one",
		Description: "Handle edge tiles according to the overall shape of the hand.",
	},
	{
		ID:          "midgame-04",
		Chapter:     ChapterMidgame,
		Title:       "Watch the pair count: few pairs keep, many pairs break",
		Mnemonic:    "Keep one or two pairs, consider breaking at three or more",
		Description: "Too many pairs slow the hand down; break a known pair to speed up.",
	},
	{
		ID:          "midgame-05",
		Chapter:     ChapterMidgame,
		Title:       "Connected tiles are powerful, never throw them lightly",
		Mnemonic:    "Keep 45, 56 and 67 first",
		Description: "Connected tiles give multi-sided draws and are the core asset of the middle game.",
	},
	{
		ID:          "midgame-06",
		Chapter:     ChapterMidgame,
		Title:       "Discard live tiles early, dead tiles late",
		Mnemonic:    "Shed risky tiles early, safe seen tiles late",
		Description: "Defense matters more as the wall shrinks; tiles already on the table are safer.",
	},
	{
		ID:          "meld-01",
		Chapter:     ChapterMeld,
		Title:       "Pung when you can to break the draw order",
		Mnemonic:    "Weak hand: pung and kong to stir; smooth hand: be careful",
		Description: "A pung interrupts the opponents' draw rhythm but reveals information.",
	},
	{
		ID:          "meld-02",
		Chapter:     ChapterMeld,
		Title:       "A tile passing the door is worth less than one from the wall",
		Mnemonic:    "Do not rush a pung you do not need",
		Description: "Keep the closed hand and its flexibility instead of locking the shape too early.",
	},
	{
		ID:          "meld-03",
		Chapter:     ChapterMeld,
		Title:       "A concealed kong is a sword, an exposed kong leaks information",
		Mnemonic:    "Concealed kong beats exposed kong",
		Description: "A concealed kong pays quietly; an exposed kong scores more but reveals your plan.",
	},
	{
		ID:          "meld-04",
		Chapter:     ChapterMeld,
		Title:       "Unsure about a pung? Wait one more turn",
		Mnemonic:    "When in doubt, pass and look again",
		Description: "Another round of table information makes the pung or kong decision safer.",
	},
	{
		ID:          "defense-01",
		Chapter:     ChapterDefense,
		Title:       "Watch upstream, block downstream, guard the player opposite",
		Mnemonic:    "Find the dangerous seat, then discard seen tiles",
		Description: "Judge risk from seat position and discard rhythm, and prefer tiles already seen.",
	},
	{
		ID:          "defense-02",
		Chapter:     ChapterDefense,
		Title:       "Follow the suit your downstream player discards",
		Mnemonic:    "Go with the next player's flow to avoid feeding them",
		Description: "Watch the next player's suit preference so you do not hand them easy pungs.",
	},
	{
		ID:          "defense-03",
		Chapter:     ChapterDefense,
		Title:       "4 then 2 means a pair of 1s; 6 then 8 means a pair of 9s",
		Mnemonic:    "Read pairs back from discard order",
		Description: "The order of an opponent's discards tells you which pairs they are holding.",
	},
	{
		ID:          "defense-04",
		Chapter:     ChapterDefense,
		Title:       "An unseen 9 is wanted by someone; an unseen suit hides a big hand",
		Mnemonic:    "Long-unseen tiles are high risk",
		Description: "A tile that never shows up is usually part of a key shape in another hand.",
	},
	{
		ID:          "listening-01",
		Chapter:     ChapterListening,
		Title:       "Wait early, win early; a small win is still a win",
		Mnemonic:    "Speed first, hand value second",
		Description: "Blood battle moves fast; winning first usually beats chasing a big hand.",
	},
	{
		ID:          "listening-02",
		Chapter:     ChapterListening,
		Title:       "Choose multi-sided waits over pair and edge waits",
		Mnemonic:    "More sides to the wait is better",
		Description: "Build waits with three or more sides to avoid getting stuck.",
	},
	{
		ID:          "listening-03",
		Chapter:     ChapterListening,
		Title:       "A two-pair wait rarely wins; break it when needed",
		Mnemonic:    "Break a two-pair wait to speed up",
		Description: "Two-pair waits win rarely; break them into a wider wait when you can.",
	},
	{
		ID:          "listening-04",
		Chapter:     ChapterListening,
		Title:       "A tile that comes back should be kept",
		Mnemonic:    "A returning tile is often safe or a winning tile",
		Description: "A tile you discarded and drew again is a defensive or waiting resource.",
	},
}

// maxExamplesPerRule caps how many example questions a rule tag lists.
const maxExamplesPerRule = 6
