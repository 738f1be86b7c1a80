// Package shortid maps opaque member identifiers to compact ordinal
// tokens (M1, M2, ...) and back.
//
// The indirection exists because scoring context may be handed to an
// external text-generation step that cannot reliably echo long opaque
// identifiers. The codec is the trust boundary on the way back in:
// whatever token the external step returns is either decoded to a real
// member id or rejected, never guessed.
package shortid

import (
	"fmt"
	"strings"

	"github.com/okian/rostra/internal/domain/model"
)

// Role descriptions are clipped to this many characters in display lines.
const descriptionLimit = 50

// Map is the reverse lookup from token to member id. Built fresh per
// scoring call from roster order and never persisted.
type Map map[string]string

// Encode assigns tokens M1..Mn in roster iteration order and returns
// one display line per member plus the reverse lookup map.
//
// Line shape: "M3: Engineer (does backend work) | 4 tasks [BUSY]".
func Encode(roster []model.Member) ([]string, Map) {
	lines := make([]string, 0, len(roster))
	m := make(Map, len(roster))

	for i, member := range roster {
		token := fmt.Sprintf("M%d", i+1)
		m[token] = member.ID
		lines = append(lines, displayLine(token, member))
	}

	return lines, m
}

// Decode resolves a token produced by Encode back to the member id.
// Tokens not in the map fail with ErrUnknownToken; the caller treats
// that as "no assignee".
func Decode(token string, m Map) (string, error) {
	id, ok := m[strings.TrimSpace(token)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownToken, token)
	}
	return id, nil
}

func displayLine(token string, m model.Member) string {
	var b strings.Builder

	b.WriteString(token)
	b.WriteString(": ")
	b.WriteString(m.RoleName)

	if desc := m.RoleDescription; desc != "" {
		if len(desc) > descriptionLimit {
			desc = desc[:descriptionLimit]
		}
		b.WriteString(" (")
		b.WriteString(desc)
		b.WriteString(")")
	}

	fmt.Fprintf(&b, " | %d tasks", m.CurrentTaskCount)

	if m.IsOverworked {
		b.WriteString(" [BUSY]")
	}

	return b.String()
}
