package models

type Category string

const (
	CategoryReading   Category = "reading"
	CategoryWriting   Category = "writing"
	CategorySpeaking  Category = "speaking"
	CategoryListening Category = "listening"
)

// Module is a named, category-tagged practice entry on the dashboard,
// mapped to exactly one game type.
type Module struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Duration    int      `json:"duration"` // typical minutes per playthrough
	Icon        string   `json:"icon"`
	GameType    GameType `json:"game_type"`
}
