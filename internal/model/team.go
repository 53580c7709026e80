// Package model содержит доменные структуры для команд, инвайтов и снапшота состояния.
package model

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// reHandle описывает игровой ник в формате Name#Tag, например Larry#123.
var reHandle = regexp.MustCompile(`^[A-Za-z0-9]+#[0-9]{3,5}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("handle", func(fl validator.FieldLevel) bool {
		return reHandle.MatchString(fl.Field().String())
	})
	return v
}

// ValidHandle проверяет, что строка соответствует формату Name#Tag (3–5 цифр в теге).
func ValidHandle(handle string) bool {
	return reHandle.MatchString(handle)
}

// TeamState описывает состояние слота второго игрока.
type TeamState string

const (
	// TeamOpen означает, что второй игрок ещё не присоединился.
	TeamOpen TeamState = "OPEN"
	// TeamFull означает, что оба слота заняты.
	TeamFull TeamState = "FULL"
)

// Team описывает команду из двух игроков. Второй игрок заполняется ровно один раз,
// после принятия инвайта.
type Team struct {
	TeamName      string  `json:"team_name" validate:"required"`
	Player1ID     string  `json:"player1_id" validate:"required"`
	Player2ID     *string `json:"player2_id"`
	Player1Handle string  `json:"player1_handle" validate:"required,handle"`
	Player2Handle *string `json:"player2_handle" validate:"omitempty,handle"`
}

// NewTeam создаёт открытую команду и валидирует обязательные поля.
func NewTeam(name, player1ID, player1Handle string) (Team, error) {
	t := Team{
		TeamName:      name,
		Player1ID:     player1ID,
		Player1Handle: player1Handle,
	}
	if err := t.Validate(); err != nil {
		return Team{}, err
	}
	return t, nil
}

// Validate проверяет запись команды. Поля второго игрока должны быть либо заданы оба, либо пусты.
func (t Team) Validate() error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("team %q: %w", t.TeamName, err)
	}
	if (t.Player2ID == nil) != (t.Player2Handle == nil) {
		return fmt.Errorf("team %q: player2_id and player2_handle must be set together", t.TeamName)
	}
	if t.Player2ID != nil && *t.Player2ID == "" {
		return fmt.Errorf("team %q: player2_id must not be empty", t.TeamName)
	}
	if t.Player2ID != nil && *t.Player2ID == t.Player1ID {
		return fmt.Errorf("team %q: player1 and player2 must differ", t.TeamName)
	}
	return nil
}

// State возвращает OPEN, пока второй слот свободен.
func (t Team) State() TeamState {
	if t.Player2ID == nil {
		return TeamOpen
	}
	return TeamFull
}

// HasPlayer сообщает, состоит ли пользователь в команде.
func (t Team) HasPlayer(userID string) bool {
	if t.Player1ID == userID {
		return true
	}
	return t.Player2ID != nil && *t.Player2ID == userID
}

// WithPlayer2 возвращает копию команды с заполненным вторым игроком.
func (t Team) WithPlayer2(playerID, handle string) Team {
	t.Player2ID = &playerID
	t.Player2Handle = &handle
	return t
}

// Member описывает участника сервера, как его видит чат-платформа.
type Member struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
}

// Mention возвращает упоминание пользователя в формате платформы.
func (m Member) Mention() string {
	return Mention(m.ID)
}

// Name возвращает отображаемое имя или username, если имени нет.
func (m Member) Name() string {
	if m.DisplayName != "" {
		return m.DisplayName
	}
	return m.Username
}

// Mention форматирует упоминание пользователя по идентификатору.
func Mention(userID string) string {
	return "<@" + userID + ">"
}
