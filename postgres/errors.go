package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/lib/pq"

	"github.com/phbpx/leadcapture"
)

// lib/pq errorCodeNames
// https://github.com/lib/pq/blob/master/error.go#L178
const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

// detailKey extracts the column list from a unique violation detail such as
// `Key (email)=(a@b.c) already exists.`
var detailKey = regexp.MustCompile(`^Key \(([^)]+)\)=`)

// ErrorMapper translates storage errors for one entity into *leadcapture.Error
// values. Constraints maps a constraint name to the fields it covers, named
// as callers know them.
type ErrorMapper struct {
	Entity      string
	Constraints map[string][]string
}

// Map classifies err. Already classified errors are returned unchanged.
func (m ErrorMapper) Map(err error) error {
	if err == nil {
		return nil
	}

	var derr *leadcapture.Error
	if errors.As(err, &derr) {
		return derr
	}

	if errors.Is(err, sql.ErrNoRows) {
		return leadcapture.NotFoundError(m.Entity + " not found")
	}

	var pqerr *pq.Error
	if errors.As(err, &pqerr) {
		switch pqerr.Code {
		case uniqueViolation:
			fields := m.fields(pqerr)
			return leadcapture.ConflictError(conflictMessage(m.Entity, fields), fields...)
		case foreignKeyViolation:
			return leadcapture.NotFoundError("Referenced record not found")
		}
		return leadcapture.InternalError(fmt.Errorf("%s storage [%s]: %w", strings.ToLower(m.Entity), pqerr.Code, err))
	}

	return leadcapture.InternalError(err)
}

func (m ErrorMapper) fields(pqerr *pq.Error) []string {
	if fields, ok := m.Constraints[pqerr.Constraint]; ok {
		return fields
	}

	match := detailKey.FindStringSubmatch(pqerr.Detail)
	if match == nil {
		return nil
	}

	cols := strings.Split(match[1], ",")
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	return cols
}

func conflictMessage(entity string, fields []string) string {
	if len(fields) == 0 {
		return entity + " already exists"
	}
	return capitalize(strings.Join(fields, ", ")) + " already exists"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
