package model

import "fmt"

// Snapshot описывает полное состояние бота, которое целиком перезаписывается после каждой мутации.
type Snapshot struct {
	Teams          map[string]Team          `json:"teams"`
	PendingInvites map[string]PendingInvite `json:"pending_invites"`
}

// EmptySnapshot возвращает снапшот с инициализированными пустыми картами.
func EmptySnapshot() Snapshot {
	return Snapshot{
		Teams:          make(map[string]Team),
		PendingInvites: make(map[string]PendingInvite),
	}
}

// Normalize заменяет nil-карты пустыми, чтобы JSON всегда содержал оба поля.
func (s Snapshot) Normalize() Snapshot {
	if s.Teams == nil {
		s.Teams = make(map[string]Team)
	}
	if s.PendingInvites == nil {
		s.PendingInvites = make(map[string]PendingInvite)
	}
	return s
}

// Validate проверяет каждую запись и согласованность ключей карт с полями записей.
func (s Snapshot) Validate() error {
	rostered := make(map[string]string)
	for name, t := range s.Teams {
		if name != t.TeamName {
			return fmt.Errorf("team key %q does not match team_name %q", name, t.TeamName)
		}
		if err := t.Validate(); err != nil {
			return err
		}
		ids := []string{t.Player1ID}
		if t.Player2ID != nil {
			ids = append(ids, *t.Player2ID)
		}
		for _, id := range ids {
			if other, ok := rostered[id]; ok {
				return fmt.Errorf("player %s is rostered in both %q and %q", id, other, name)
			}
			rostered[id] = name
		}
	}
	for invitee, inv := range s.PendingInvites {
		if invitee != inv.InviteeID {
			return fmt.Errorf("invite key %q does not match invitee_id %q", invitee, inv.InviteeID)
		}
		if err := inv.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Clone возвращает глубокую копию снапшота.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Teams:          make(map[string]Team, len(s.Teams)),
		PendingInvites: make(map[string]PendingInvite, len(s.PendingInvites)),
	}
	for k, t := range s.Teams {
		out.Teams[k] = t.clone()
	}
	for k, inv := range s.PendingInvites {
		out.PendingInvites[k] = inv
	}
	return out
}

func (t Team) clone() Team {
	if t.Player2ID != nil {
		id := *t.Player2ID
		t.Player2ID = &id
	}
	if t.Player2Handle != nil {
		h := *t.Player2Handle
		t.Player2Handle = &h
	}
	return t
}
