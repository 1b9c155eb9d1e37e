package cli

import (
	"bytes"
	"testing"

	"github.com/fitfriend/fitfriend/internal/attendance"
	"github.com/fitfriend/fitfriend/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execMembers(store *attendance.Store) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := membersCmd
	cmd.SetOut(stdout)

	err := runMembers(cmd, store)
	return stdout.String(), err
}

func TestMembersListsRosterInOrder(t *testing.T) {
	stdout, err := execMembers(newTestStore(t))
	require.NoError(t, err)

	assert.Contains(t, stdout, "Alex P.")
	assert.Contains(t, stdout, "5.")
	assert.Less(t, bytes.Index([]byte(stdout), []byte("Alex P.")), bytes.Index([]byte(stdout), []byte("MySelf")))
}

func TestMembersWorksWithoutBackend(t *testing.T) {
	stdout, err := execMembers(attendance.NewStore(nil))
	require.NoError(t, err)
	assert.Contains(t, stdout, "Jordan M.")
}

func TestResolveMember(t *testing.T) {
	members := attendance.DefaultRoster

	tests := []struct {
		name     string
		input    string
		allowAll bool
		want     string
		wantErr  bool
	}{
		{"exact", "Casey B.", false, "Casey B.", false},
		{"case insensitive", "casey b.", false, "Casey B.", false},
		{"trimmed", "  MySelf ", false, "MySelf", false},
		{"unknown", "Pat Q.", false, "", true},
		{"empty without all", "", false, "", true},
		{"empty with all", "", true, report.AllMembers, false},
		{"all keyword", "ALL", true, report.AllMembers, false},
		{"all keyword not allowed", "all", false, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveMember(members, tt.input, tt.allowAll)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown member")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
