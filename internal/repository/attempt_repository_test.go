package repository

import (
	"strings"
	"testing"
)

// GROUPS is a reserved word in MySQL 8. Raw SQL fragments are handed to
// GORM verbatim, so any bare reference to the groups table would produce
// a 1064 syntax error at runtime.
func TestRawGroupFragmentsQuoteReservedTable(t *testing.T) {
	fragments := map[string]string{
		"groupsJoin":           groupsJoin,
		"groupsMentorFilter":   groupsMentorFilter,
		"groupAveragesSelect":  groupAveragesSelect,
		"groupAveragesGroupBy": groupAveragesGroupBy,
	}
	for name, sql := range fragments {
		if !strings.Contains(sql, "`groups`") {
			t.Errorf("%s does not reference the quoted groups table: %q", name, sql)
		}
		if strings.Contains(strings.ReplaceAll(sql, "`groups`", ""), "groups") {
			t.Errorf("%s references groups without quoting: %q", name, sql)
		}
	}
}
