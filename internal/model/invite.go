package model

import "fmt"

// PendingInvite описывает неотвеченное приглашение во вторую позицию команды.
// Ключом служит идентификатор приглашённого.
type PendingInvite struct {
	InviteeID string `json:"invitee_id" validate:"required"`
	TeamName  string `json:"team_name" validate:"required"`
	InviterID string `json:"inviter_id" validate:"required"`
}

// NewPendingInvite создаёт инвайт и валидирует обязательные поля.
func NewPendingInvite(inviteeID, teamName, inviterID string) (PendingInvite, error) {
	inv := PendingInvite{
		InviteeID: inviteeID,
		TeamName:  teamName,
		InviterID: inviterID,
	}
	if err := inv.Validate(); err != nil {
		return PendingInvite{}, err
	}
	return inv, nil
}

// Validate проверяет запись инвайта.
func (p PendingInvite) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invite for %q: %w", p.InviteeID, err)
	}
	if p.InviteeID == p.InviterID {
		return fmt.Errorf("invite for %q: invitee and inviter must differ", p.InviteeID)
	}
	return nil
}

// Pairing описывает результат принятого инвайта, который вызывающая сторона
// превращает в заполненную команду.
type Pairing struct {
	TeamName      string `json:"team_name"`
	InviterID     string `json:"inviter_id"`
	InviterHandle string `json:"inviter_handle"`
	InviteeID     string `json:"invitee_id"`
	InviteeHandle string `json:"invitee_handle"`
}
