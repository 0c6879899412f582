package models

import "time"

// Progress is the gamified view of cumulative teaching activity.
type Progress struct {
	XP        int     `json:"xp"`
	Level     int     `json:"level"`
	Fraction  float64 `json:"progress"` // [0, 1)
	XPToNext  int     `json:"xp_to_next_level"`
	RankTitle string  `json:"rank_title"`
}

type TeacherStats struct {
	ActiveStudents int           `json:"students"`
	ClassesGiven   int           `json:"classes"`
	FreeClasses    int           `json:"free_classes"`
	ActiveTrials   int           `json:"active_trials"`
	Progress       Progress      `json:"progress"`
	Achievements   []Achievement `json:"achievements"`
}

type Achievement struct {
	Title    string `json:"title"`
	Unlocked bool   `json:"unlocked"`
}

type Backup struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
	Size      int64     `json:"size"`
}
