package bot

import (
	"time"

	"student-control/internal/models"
)

type BotState int

const (
	StateDefault BotState = iota

	// login
	StateAwaitingUsername
	StateAwaitingPassword

	// attendance marking
	StateSelectingStudent
	StateSelectingStatus

	StateEditingNote
	StateSelectingReport
)

type UserSession struct {
	State    BotState
	User     *models.User // nil until the login succeeds
	Username string

	Date              time.Time
	DailyEntries      []models.DailyScheduleEntry
	SelectedStudentID int64
}

func (s *UserSession) loggedIn() bool {
	return s.User != nil
}

func (b *Bot) getOrCreateSession(chatID int64) *UserSession {
	b.mu.Lock()
	defer b.mu.Unlock()

	if session, exists := b.userSessions[chatID]; exists {
		return session
	}

	session := &UserSession{State: StateDefault}
	b.userSessions[chatID] = session
	return session
}

// resetSession drops any flow in progress but keeps the login.
func (b *Bot) resetSession(chatID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if session, exists := b.userSessions[chatID]; exists {
		b.userSessions[chatID] = &UserSession{State: StateDefault, User: session.User}
	}
}

func (b *Bot) logout(chatID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.userSessions, chatID)
}
