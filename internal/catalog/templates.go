package catalog

import (
	"strings"
)

// Tiles are written as rank followed by suit letter: m (characters),
// s (bamboo) and p (dots). Template hands are rotated across suits per
// variant so each generated question shows a different hand.
var suitCycle = []string{"m", "s", "p"}

// SuitName returns the display name for a suit letter.
func SuitName(suit string) string {
	switch suit {
	case "m":
		return "characters"
	case "s":
		return "bamboo"
	case "p":
		return "dots"
	default:
		return suit
	}
}

// rotateTile shifts the tile's suit forward by offset positions in the suit cycle.
// Tiles without a known suit suffix are returned unchanged.
func rotateTile(tile string, offset int) string {
	if tile == "" {
		return tile
	}
	suit := tile[len(tile)-1:]
	idx := -1
	for i, s := range suitCycle {
		if s == suit {
			idx = i
			break
		}
	}
	if idx < 0 {
		return tile
	}
	return tile[:len(tile)-1] + suitCycle[(idx+offset)%len(suitCycle)]
}

func rotateTiles(tiles []string, variant int) []string {
	if tiles == nil {
		return nil
	}
	out := make([]string, len(tiles))
	for i, t := range tiles {
		out[i] = rotateTile(t, variant%len(suitCycle))
	}
	return out
}

// tileOptions labels rotated tiles with option ids A, B, C...
func tileOptions(tiles []string, variant int) []Option {
	rotated := rotateTiles(tiles, variant)
	opts := make([]Option, len(rotated))
	for i, t := range rotated {
		opts[i] = Option{ID: string(rune('A' + i)), Label: t}
	}
	return opts
}

// template produces one question per variant. Static fields are used
// unless the corresponding func is set.
type template struct {
	typ         QuestionType
	multiSelect bool
	prompt      string
	promptFn    func(variant int) string
	hand        []string
	discards    []string
	options     []Option
	tiles       []string // options drawn from rotated tiles
	optionsFn   func(variant int) []Option
	correct     []string
	ruleRefs    []string
	pitfall     string
}

func (t template) promptFor(variant int) string {
	if t.promptFn != nil {
		return t.promptFn(variant)
	}
	return t.prompt
}

func (t template) optionsFor(variant int) []Option {
	switch {
	case t.optionsFn != nil:
		return t.optionsFn(variant)
	case len(t.tiles) > 0:
		return tileOptions(t.tiles, variant)
	default:
		opts := make([]Option, len(t.options))
		copy(opts, t.options)
		return opts
	}
}

var voidDiscardHand = []string{"2m", "3m", "4m", "6m", "7m", "2s", "3s", "4s", "7s", "8s", "1p", "6p", "9p"}

var openingTemplates = []template{
	{
		typ:    TypeVoidOrSwap,
		prompt: "After the swap you hold the fewest dots, mostly edge tiles. Which suit should you void?",
		hand:   []string{"1m", "3m", "4m", "7m", "8m", "2s", "3s", "6s", "7s", "2p", "5p", "8p", "9p"},
		options: []Option{
			{ID: "A", Label: "Void characters", Note: "Characters are plentiful and have middle-tile potential."},
			{ID: "B", Label: "Void bamboo", Note: "Bamboo links up; do not drop it first."},
			{ID: "C", Label: "Void dots", Note: "Dots are the shortest and least efficient suit."},
			{ID: "D", Label: "Wait two turns before voiding", Note: "Blood battle rewards committing early."},
		},
		correct:  []string{"C"},
		ruleRefs: []string{"opening-01", "opening-02"},
		pitfall:  "Voiding by feel leaves several suits half cleared and makes the late game painful.",
	},
	{
		typ:    TypeVoidOrSwap,
		prompt: "Which group is the better choice to swap out?",
		hand:   []string{"2m", "4m", "5m", "6m", "7m", "2s", "3s", "5s", "7s", "1p", "1p", "9p", "9p"},
		options: []Option{
			{ID: "A", Label: "4m 5m 6m", Note: "Handing out middle tiles disrupts the opponents' runs."},
			{ID: "B", Label: "1p 1p 9p", Note: "Pairs and edge tiles are better kept."},
			{ID: "C", Label: "2s 3s 5s", Note: "Bamboo still has partial-set value."},
			{ID: "D", Label: "7m 2s 9p", Note: "A random swap with no structure gains little."},
		},
		correct:  []string{"A"},
		ruleRefs: []string{"opening-01", "opening-03"},
		pitfall:  "Swapping away pairs and edge tiles weakens later defense and pair building.",
	},
	{
		typ: TypeDiscardBest,
		promptFn: func(variant int) string {
			return "You voided " + SuitName(rotateTile("1p", variant%len(suitCycle))[1:]) + ". Which tile goes first in the opening turns?"
		},
		hand: voidDiscardHand,
		optionsFn: func(variant int) []Option {
			hand := rotateTiles(voidDiscardHand, variant)
			voidSuit := rotateTile("1p", variant%len(suitCycle))[1:]
			first := hand[10]
			for _, t := range hand {
				if strings.HasSuffix(t, voidSuit) {
					first = t
					break
				}
			}
			return []Option{
				{ID: "A", Label: first},
				{ID: "B", Label: hand[0]},
				{ID: "C", Label: hand[5]},
				{ID: "D", Label: hand[3]},
			}
		},
		correct:  []string{"A"},
		ruleRefs: []string{"opening-02"},
		pitfall:  "Clearing the void suit slowly forces unseen discards in dangerous late turns.",
	},
	{
		typ:      TypeDiscardBest,
		prompt:   "Golden 3, silver 7, stinking 2 and 8: which tile do you deal with first?",
		hand:     []string{"2m", "3m", "4m", "7m", "7m", "8m", "2s", "3s", "7s", "8s", "2p", "3p", "7p"},
		options:  []Option{{ID: "A", Label: "3m"}, {ID: "B", Label: "7s"}, {ID: "C", Label: "2m"}, {ID: "D", Label: "7p"}},
		correct:  []string{"C"},
		ruleRefs: []string{"opening-04"},
		pitfall:  "Keeping a 2 as if it were a middle tile lowers draw efficiency.",
	},
}

var midgameTemplates = []template{
	{
		typ:      TypeDiscardBest,
		prompt:   "Following 1-4-7 cut the 1, which tile should this hand discard first?",
		hand:     []string{"1m", "4m", "7m", "3m", "4m", "5m", "2s", "3s", "4s", "6s", "7s", "8s", "5p"},
		options:  []Option{{ID: "A", Label: "1m"}, {ID: "B", Label: "4m"}, {ID: "C", Label: "7m"}, {ID: "D", Label: "5p"}},
		correct:  []string{"A"},
		ruleRefs: []string{"midgame-01"},
		pitfall:  "Breaking middle tiles removes later two-sided waits.",
	},
	{
		typ:    TypeDiscardBest,
		prompt: "You hold both a 12 edge shape and a 46 gap shape. Which do you break?",
		hand:   []string{"1m", "2m", "4m", "6m", "3m", "4m", "5m", "6s", "7s", "8s", "2p", "3p", "4p"},
		options: []Option{
			{ID: "A", Label: "Break the 12 edge"},
			{ID: "B", Label: "Break the 46 gap"},
			{ID: "C", Label: "Break the 678 run"},
			{ID: "D", Label: "Break the 234 run"},
		},
		correct:  []string{"A"},
		ruleRefs: []string{"midgame-03", "midgame-02"},
		pitfall:  "Breaking the gap shape turns a multi-sided wait into a single wait.",
	},
	{
		typ:         TypeWaitTiles,
		multiSelect: true,
		prompt:      "This hand is one away from ready. After discarding 9m, which draws help most?",
		hand:        []string{"3m", "4m", "5m", "5m", "6m", "7m", "2s", "3s", "4s", "7p", "8p", "9p", "9m"},
		options: []Option{
			{ID: "A", Label: "2m / 5m"},
			{ID: "B", Label: "3m / 6m"},
			{ID: "C", Label: "4m / 7m"},
			{ID: "D", Label: "Only 9m"},
		},
		correct:  []string{"B"},
		ruleRefs: []string{"midgame-05", "midgame-01"},
		pitfall:  "Looking at a single wait without counting the draws of the whole connected block.",
	},
	{
		typ:    TypeDiscardBest,
		prompt: "You already hold three pairs. Which one should you break now?",
		hand:   []string{"2m", "2m", "5m", "5m", "8m", "8m", "3s", "4s", "5s", "6s", "7s", "3p", "4p"},
		options: []Option{
			{ID: "A", Label: "Break the 2m pair"},
			{ID: "B", Label: "Break the 5m pair"},
			{ID: "C", Label: "Break the 8m pair"},
			{ID: "D", Label: "Keep all pairs"},
		},
		correct:  []string{"C"},
		ruleRefs: []string{"midgame-04", "midgame-05"},
		pitfall:  "Holding on to too many pairs misses the window to get ready.",
	},
	{
		typ:      TypeSafeDiscard,
		prompt:   "Late in the hand, which tile is the better discard?",
		hand:     []string{"2m", "3m", "4m", "6m", "7m", "8m", "3s", "4s", "5s", "6p", "7p", "8p", "9s"},
		discards: []string{"9s", "9s", "6p", "1m", "4p", "6p"},
		tiles:    []string{"9s", "2m", "7m", "8p"},
		correct:  []string{"A"},
		ruleRefs: []string{"midgame-06"},
		pitfall:  "Still throwing unseen tiles late feeds whoever is ready.",
	},
}

var meldTemplates = []template{
	{
		typ:    TypePengOrPass,
		prompt: "Your hand is weak and the upstream player discards a tile you can pung. Best play?",
		hand:   []string{"1m", "3m", "5m", "7m", "7m", "2s", "4s", "6s", "8s", "3p", "5p", "7p", "9p"},
		options: []Option{
			{ID: "A", Label: "Pung to stir the tempo"},
			{ID: "B", Label: "Pass and stay concealed"},
			{ID: "C", Label: "Declare an exposed kong"},
			{ID: "D", Label: "Give up and defend"},
		},
		correct:  []string{"A"},
		ruleRefs: []string{"meld-01"},
		pitfall:  "Staying concealed with a poor hand wastes the chance to change the tempo.",
	},
	{
		typ:    TypePengOrPass,
		prompt: "Your shape is decent with many useful draws. How do you treat a pung chance?",
		hand:   []string{"2m", "3m", "4m", "4m", "5m", "6m", "2s", "3s", "4s", "7p", "8p", "9p", "5s"},
		options: []Option{
			{ID: "A", Label: "Pung now to fix the shape"},
			{ID: "B", Label: "Pass, draw once, then decide"},
			{ID: "C", Label: "Discard a middle tile instead"},
			{ID: "D", Label: "Pung and break a run"},
		},
		correct:  []string{"B"},
		ruleRefs: []string{"meld-02", "meld-04"},
		pitfall:  "Punging too early removes room to adjust.",
	},
	{
		typ:    TypePengOrPass,
		prompt: "You can kong a concealed triplet while two players are clearly ready. First move?",
		hand:   []string{"6m", "6m", "6m", "2s", "3s", "4s", "5s", "6s", "7s", "3p", "4p", "5p", "8p"},
		options: []Option{
			{ID: "A", Label: "Concealed kong to hide information and draw"},
			{ID: "B", Label: "Exposed kong to raise the score now"},
			{ID: "C", Label: "Break the triplet without a kong"},
			{ID: "D", Label: "Give up the hand"},
		},
		correct:  []string{"A"},
		ruleRefs: []string{"meld-03"},
		pitfall:  "Choosing an exposed kong for points reveals what you are building.",
	},
	{
		typ:    TypePengOrPass,
		prompt: "You are unsure about a pung. What is the steadiest way to control tempo?",
		hand:   []string{"1m", "1m", "2m", "3m", "5m", "6m", "7m", "3s", "4s", "6s", "7s", "8p", "9p"},
		options: []Option{
			{ID: "A", Label: "Pung right away so you don't miss it"},
			{ID: "B", Label: "Pass one turn and decide after"},
			{ID: "C", Label: "Exposed kong first"},
			{ID: "D", Label: "Discard the pair immediately"},
		},
		correct:  []string{"B"},
		ruleRefs: []string{"meld-04", "meld-02"},
		pitfall:  "Forcing a pung while unsure can wreck a good shape.",
	},
}

var defenseTemplates = []template{
	{
		typ:      TypeSafeDiscard,
		prompt:   "The player opposite threw middle tiles in a row and then paused. Which tile is safer?",
		hand:     []string{"1m", "2m", "3m", "4m", "5m", "6m", "2s", "3s", "4s", "7p", "8p", "9p", "9m"},
		discards: []string{"4m", "5m", "6m", "2s", "2s", "7p"},
		tiles:    []string{"4m", "9m", "3s", "8p"},
		correct:  []string{"A"},
		ruleRefs: []string{"defense-01"},
		pitfall:  "Ignoring seen tiles and gambling on an unseen one.",
	},
	{
		typ:      TypeSafeDiscard,
		prompt:   "Your downstream player keeps throwing characters. Which suit should you follow?",
		hand:     []string{"2m", "3m", "7m", "8m", "3s", "4s", "5s", "6s", "2p", "3p", "4p", "7p", "9p"},
		discards: []string{"1m", "4m", "7m", "2m", "8m"},
		options: []Option{
			{ID: "A", Label: "Keep throwing characters with them"},
			{ID: "B", Label: "Throw only bamboo to force a switch"},
			{ID: "C", Label: "Throw only dots to feed first"},
			{ID: "D", Label: "Probe with middle tiles"},
		},
		correct:  []string{"A"},
		ruleRefs: []string{"defense-02"},
		pitfall:  "Playing against the next player's flow raises the risk of being punged.",
	},
	{
		typ:      TypeSafeDiscard,
		prompt:   "An opponent discarded a 4 and then a 2. Which pair should worry you most?",
		hand:     []string{"1m", "4m", "6m", "8m", "2s", "3s", "5s", "7s", "2p", "4p", "6p", "8p", "9p"},
		discards: []string{"4m", "2m", "7s", "9p"},
		options: []Option{
			{ID: "A", Label: "Pair of 1s"},
			{ID: "B", Label: "Pair of 5s"},
			{ID: "C", Label: "Pair of 7s"},
			{ID: "D", Label: "Pair of 9s"},
		},
		correct:  []string{"A"},
		ruleRefs: []string{"defense-03"},
		pitfall:  "Ignoring discard order throws away the key inference.",
	},
	{
		typ:      TypeSafeDiscard,
		prompt:   "A 9 in one suit has not shown up for a long time. What is the sensible handling?",
		hand:     []string{"2m", "3m", "4m", "6m", "7m", "8m", "2s", "3s", "4s", "5p", "6p", "7p", "9m"},
		discards: []string{"1m", "2m", "3m", "4s", "5s", "6s"},
		options: []Option{
			{ID: "A", Label: "Hold the 9 and play seen tiles first"},
			{ID: "B", Label: "Throw the 9 now to probe"},
			{ID: "C", Label: "Throw two unseen tiles in a row"},
			{ID: "D", Label: "Ignore the signal and play by feel"},
		},
		correct:  []string{"A"},
		ruleRefs: []string{"defense-04", "defense-01"},
		pitfall:  "Ignoring the unseen-tile signal and handing over the dangerous tile.",
	},
}

var listeningTemplates = []template{
	{
		typ:    TypeDiscardBest,
		prompt: "You can chase a slow full flush or take a fast two-sided wait. What comes first?",
		hand:   []string{"2m", "3m", "4m", "5m", "6m", "7m", "2s", "3s", "4s", "7p", "8p", "8p", "9p"},
		options: []Option{
			{ID: "A", Label: "Chase the flush and keep stray tiles"},
			{ID: "B", Label: "Take the fast two-sided wait"},
			{ID: "C", Label: "Switch to seven pairs"},
			{ID: "D", Label: "Watch for two more turns"},
		},
		correct:  []string{"B"},
		ruleRefs: []string{"listening-01"},
		pitfall:  "Chasing a big hand late and missing the first win.",
	},
	{
		typ:         TypeWaitTiles,
		multiSelect: true,
		prompt:      "Two waits are possible. Which fits the multi-sided wait rule?",
		hand:        []string{"3m", "4m", "5m", "6m", "7m", "8m", "2s", "3s", "5s", "6s", "7p", "8p", "9p"},
		options: []Option{
			{ID: "A", Label: "Wait on 3s / 6s / 9s"},
			{ID: "B", Label: "Two-pair wait on 7p"},
			{ID: "C", Label: "Edge wait on 1m"},
			{ID: "D", Label: "Single wait on 5s"},
		},
		correct:  []string{"A"},
		ruleRefs: []string{"listening-02"},
		pitfall:  "Comparing hand value instead of wait width.",
	},
	{
		typ:    TypeDiscardBest,
		prompt: "You are on a two-pair wait. What is the better handling?",
		hand:   []string{"2m", "3m", "4m", "5m", "6m", "7m", "3s", "4s", "5s", "6p", "7p", "8p", "8p"},
		options: []Option{
			{ID: "A", Label: "Keep the two-pair wait"},
			{ID: "B", Label: "Break the pair into an edge wait"},
			{ID: "C", Label: "Give up and defend"},
			{ID: "D", Label: "Pung first, then wait"},
		},
		correct:  []string{"B"},
		ruleRefs: []string{"listening-03", "listening-02"},
		pitfall:  "A two-pair wait is narrow and slows the win noticeably.",
	},
	{
		typ:      TypeSafeDiscard,
		prompt:   "The 6s you discarded earlier came back to you. What fits this stage best?",
		hand:     []string{"1m", "2m", "3m", "4m", "5m", "6m", "6s", "7s", "8s", "3p", "4p", "5p", "9p"},
		discards: []string{"6s", "2p", "5s", "8m", "6s"},
		options: []Option{
			{ID: "A", Label: "Keep the returning tile for safety and the wait"},
			{ID: "B", Label: "Throw it straight back"},
			{ID: "C", Label: "Break a run to keep a pair"},
			{ID: "D", Label: "Switch to a big hand"},
		},
		correct:  []string{"A"},
		ruleRefs: []string{"listening-04", "defense-01"},
		pitfall:  "Throwing a returning tile away again loses a safe-tile reserve.",
	},
}

// chapterPlan fixes how many questions each chapter generates and from which templates.
var chapterPlan = []struct {
	chapter   ChapterID
	count     int
	templates []template
}{
	{ChapterOpening, 24, openingTemplates},
	{ChapterMidgame, 30, midgameTemplates},
	{ChapterMeld, 18, meldTemplates},
	{ChapterDefense, 24, defenseTemplates},
	{ChapterListening, 24, listeningTemplates},
}

// stageChapters assigns a chapter to each 10-question stage in curriculum order.
var stageChapters = []ChapterID{
	ChapterOpening,
	ChapterOpening,
	ChapterMidgame,
	ChapterMidgame,
	ChapterMidgame,
	ChapterMeld,
	ChapterMeld,
	ChapterDefense,
	ChapterDefense,
	ChapterListening,
	ChapterListening,
	ChapterListening,
}

// StageSize is the number of questions in each challenge stage.
const StageSize = 10
