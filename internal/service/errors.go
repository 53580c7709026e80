package service

import (
	"errors"
	"fmt"
	"net/http"
)

// Коды доменных ошибок.
const (
	CodeDuplicateTeamName        = "DUPLICATE_TEAM_NAME"
	CodePlayerAlreadyRostered    = "PLAYER_ALREADY_ROSTERED"
	CodeTeamNotFound             = "TEAM_NOT_FOUND"
	CodeTeamFull                 = "TEAM_FULL"
	CodeInvalidHandleFormat      = "INVALID_HANDLE_FORMAT"
	CodeInviteChannelUnavailable = "INVITE_CHANNEL_UNAVAILABLE"
	CodeMemberNotFound           = "MEMBER_NOT_FOUND"
	CodeNoOpenTeam               = "NO_OPEN_TEAM"
	CodeBadRequest               = "BAD_REQUEST"
	CodeInternal                 = "INTERNAL"
)

// ErrDirectMessageForbidden возвращается платформой, если пользователь закрыл личные сообщения.
var ErrDirectMessageForbidden = errors.New("direct message forbidden")

// AppError описывает прикладную ошибку сервиса:
// код, короткое сообщение для пользователя, HTTP-статус для status API и вложенная ошибка.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

// Error реализует интерфейс error для AppError.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для поддержки errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrBadRequest конструирует AppError для некорректных аргументов команды.
func ErrBadRequest(msg string) *AppError {
	return &AppError{
		Code:    CodeBadRequest,
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// ErrInternal оборачивает непредвиденную ошибку (хранилище, платформа).
func ErrInternal(msg string, err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// ErrDomain конструирует AppError для доменных конфликтов.
// HTTP-статус подбирается по коду.
func ErrDomain(code, msg string) *AppError {
	status := http.StatusConflict
	switch code {
	case CodeTeamNotFound, CodeMemberNotFound, CodeNoOpenTeam:
		status = http.StatusNotFound
	case CodeInvalidHandleFormat:
		status = http.StatusBadRequest
	case CodeInviteChannelUnavailable:
		status = http.StatusFailedDependency
	}
	return &AppError{
		Code:    code,
		Message: msg,
		Status:  status,
	}
}

func errDuplicateTeamName() *AppError {
	return ErrDomain(CodeDuplicateTeamName, "This team name is already taken! ❌")
}

func errPlayerAlreadyRostered() *AppError {
	return ErrDomain(CodePlayerAlreadyRostered, "You're already in a team! ❌")
}

func errInviteeAlreadyRostered() *AppError {
	return ErrDomain(CodePlayerAlreadyRostered, "This player is already in a team! ❌")
}

func errTeamNotFound() *AppError {
	return ErrDomain(CodeTeamNotFound, "This team doesn't exist! ❌")
}

func errTeamFull() *AppError {
	return ErrDomain(CodeTeamFull, "This team is already full! ❌")
}

func errInvalidHandle() *AppError {
	return ErrDomain(CodeInvalidHandleFormat,
		"Invalid League of Legends name format! ❌\nUse: `Summoner#Tag` (e.g., `larrastiar#666`)")
}

func errInvalidHandleReply() *AppError {
	return ErrDomain(CodeInvalidHandleFormat,
		"Invalid League of Legends name format! Please use `Summoner#Tag` (e.g., `Summoner#1234`).")
}

func errNoOpenTeam() *AppError {
	return ErrDomain(CodeNoOpenTeam, "You need to create a team first!")
}

func errMemberNotFound(name string) *AppError {
	return ErrDomain(CodeMemberNotFound,
		fmt.Sprintf("%s is not a member of the guild. Cannot assign a role.", name))
}

func errInviteChannelUnavailable(mention string, err error) *AppError {
	e := ErrDomain(CodeInviteChannelUnavailable,
		fmt.Sprintf("Sorry, %s, I can't DM you. Please enable DMs for this server to receive team invitations.", mention))
	e.Err = err
	return e
}

// IsCode сообщает, является ли err AppError с указанным кодом.
func IsCode(err error, code string) bool {
	var app *AppError
	if errors.As(err, &app) {
		return app.Code == code
	}
	return false
}

// IsNotFound помогает определить, соответствует ли ошибка HTTP-статусу 404.
func IsNotFound(err error) bool {
	var app *AppError
	if errors.As(err, &app) {
		return app.Status == http.StatusNotFound
	}
	return false
}

// ErrPlayerNotFound возвращается, если приглашаемого игрока не удалось найти на сервере по имени.
func ErrPlayerNotFound() *AppError {
	return ErrDomain(CodeMemberNotFound, "Player not found!")
}
