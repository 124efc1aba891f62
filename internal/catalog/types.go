package catalog

// ChapterID identifies one of the five strategy phases of a hand.
type ChapterID string

const (
	ChapterOpening   ChapterID = "opening"
	ChapterMidgame   ChapterID = "midgame"
	ChapterMeld      ChapterID = "meld"
	ChapterDefense   ChapterID = "defense"
	ChapterListening ChapterID = "listening"
)

// AllChapters returns all chapters in curriculum order.
func AllChapters() []ChapterID {
	return []ChapterID{
		ChapterOpening,
		ChapterMidgame,
		ChapterMeld,
		ChapterDefense,
		ChapterListening,
	}
}

// ChapterMeta holds display information for a chapter.
type ChapterMeta struct {
	Name    string
	Icon    string
	Summary string
}

var chapterMeta = map[ChapterID]ChapterMeta{
	ChapterOpening: {
		Name:    "Void & Swap",
		Icon:    "🀄",
		Summary: "Pick the void suit and swap three tiles to set a direction early.",
	},
	ChapterMidgame: {
		Name:    "Shape Building",
		Icon:    "🧩",
		Summary: "Keep high-value partial sets and shed dead tiles in the middle game.",
	},
	ChapterMeld: {
		Name:    "Pung & Kong Tempo",
		Icon:    "⚡",
		Summary: "Without chow, pungs and kongs decide the tempo of the table.",
	},
	ChapterDefense: {
		Name:    "Defense & Reading",
		Icon:    "🛡️",
		Summary: "Spot danger and prefer safe discards.",
	},
	ChapterListening: {
		Name:    "Waiting & Winning",
		Icon:    "🏁",
		Summary: "Get ready fast and prefer multi-sided waits.",
	},
}

// Meta returns the display metadata for a chapter.
func (c ChapterID) Meta() ChapterMeta {
	if m, ok := chapterMeta[c]; ok {
		return m
	}
	return ChapterMeta{Name: string(c)}
}

// DisplayName returns a human-readable chapter name.
func (c ChapterID) DisplayName() string {
	return c.Meta().Name
}

// Valid reports whether c is one of the known chapters.
func (c ChapterID) Valid() bool {
	_, ok := chapterMeta[c]
	return ok
}

// QuestionType is the presentation kind of a question. It does not affect scoring.
type QuestionType string

const (
	TypeDiscardBest      QuestionType = "discard_best"
	TypeWaitTiles        QuestionType = "wait_tiles"
	TypeSafeDiscard      QuestionType = "safe_discard"
	TypePengOrPass       QuestionType = "peng_or_pass"
	TypeVoidOrSwap       QuestionType = "dingque_or_huansan"
	TypeJudgePattern     QuestionType = "judge_pattern"
	TypeTrueFalse        QuestionType = "true_false"
	TypeAnalyzeSituation QuestionType = "analyze_situation"
	TypeChooseStrategy   QuestionType = "choose_strategy"
)

// Option is a single answer choice.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Note  string `json:"note,omitempty"`
}

// ExplanationStep is one step of the walkthrough shown after an explain-mode answer.
type ExplanationStep struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Question is an immutable catalog entry.
type Question struct {
	ID               string
	Chapter          ChapterID
	Type             QuestionType
	Difficulty       int // 1-3
	Prompt           string
	Hand             []string
	Discards         []string
	Options          []Option
	CorrectOptionIDs []string
	MultiSelect      bool
	RuleRefs         []string
	ExplanationSteps []ExplanationStep
	Pitfalls         []string
}

// Option returns the option with the given id.
func (q Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// IsCorrectOption reports whether id is one of the correct option ids.
func (q Question) IsCorrectOption(id string) bool {
	for _, c := range q.CorrectOptionIDs {
		if c == id {
			return true
		}
	}
	return false
}

// Stage is a fixed-size chunk of questions forming one playable challenge unit.
type Stage struct {
	ID                  string
	Chapter             ChapterID
	Title               string
	Description         string
	QuestionIDs         []string
	RecommendedRuleTags []string
	Difficulty          int
}

// RuleTag is a strategy rule with its mnemonic.
type RuleTag struct {
	ID                 string
	Chapter            ChapterID
	Title              string
	Mnemonic           string
	Description        string
	ExampleQuestionIDs []string
}
