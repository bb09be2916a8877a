package engine

const (
	// DefaultGemTarget is the number of wins that fills the daily gem.
	DefaultGemTarget = 8
	// BloomWindow is the number of days the garden shows, today included.
	BloomWindow = 7
	// BrickCapacity is the number of bricks in one wall.
	BrickCapacity = 12

	// CurrentVersion is the blob schema written by this package.
	// Version 1 is the browser-era shape {gem, garden, bricks, aura, tarot}.
	CurrentVersion = 2

	// DefaultStateKey is the key the blob lives under in the medium.
	DefaultStateKey = "reginaEraTracker"
)

// State is the whole tracker, persisted as one JSON blob.
type State struct {
	Version int                   `json:"version"`
	Days    map[string]*DayRecord `json:"days"`
	Wall    WallState             `json:"wall"`
	Shrine  ShrineState           `json:"shrine"`
}

// DayRecord holds everything logged for one calendar day.
type DayRecord struct {
	GemFacets    int    `json:"gemFacets"`
	GemCompleted bool   `json:"gemCompleted"`
	GemNotes     string `json:"gemNotes"`
	GardenNotes  string `json:"gardenNotes"`
	BrickNotes   string `json:"brickNotes"`
	Bloom        bool   `json:"bloom"`
	// TarotID is nil until the day's card is drawn, then never changes.
	TarotID     *string  `json:"tarotId"`
	AuraNumbers []int    `json:"auraNumbers"`
	AuraLogRaw  []string `json:"auraLogRaw"`
	AuraNote    string   `json:"auraNote"`
}

type WallState struct {
	BricksInCurrent int `json:"bricksInCurrent"`
	WallsCompleted  int `json:"wallsCompleted"`
}

type ShrineState struct {
	Level  int      `json:"level"`
	Placed []string `json:"placed"`
}

// NewState returns the empty default state.
func NewState() *State {
	return &State{
		Version: CurrentVersion,
		Days:    map[string]*DayRecord{},
		Shrine:  ShrineState{Placed: []string{}},
	}
}

func newDayRecord() *DayRecord {
	return &DayRecord{
		AuraNumbers: []int{},
		AuraLogRaw:  []string{},
	}
}

// Clone returns a deep copy safe to hand to renderers.
func (s *State) Clone() *State {
	out := &State{
		Version: s.Version,
		Days:    make(map[string]*DayRecord, len(s.Days)),
		Wall:    s.Wall,
		Shrine: ShrineState{
			Level:  s.Shrine.Level,
			Placed: append([]string{}, s.Shrine.Placed...),
		},
	}
	for k, d := range s.Days {
		out.Days[k] = d.clone()
	}
	return out
}

func (d *DayRecord) clone() *DayRecord {
	if d == nil {
		return newDayRecord()
	}
	c := *d
	if d.TarotID != nil {
		id := *d.TarotID
		c.TarotID = &id
	}
	c.AuraNumbers = append([]int{}, d.AuraNumbers...)
	c.AuraLogRaw = append([]string{}, d.AuraLogRaw...)
	return &c
}
