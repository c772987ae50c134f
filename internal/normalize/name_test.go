package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName_LowercasesAndTrims(t *testing.T) {
	assert.Equal(t, "alice smith", Name("  Alice Smith  "))
}

func TestName_StripsDiacritics(t *testing.T) {
	assert.Equal(t, "jose garcia", Name("José García"))
}

func TestName_StripsKnownSuffix(t *testing.T) {
	assert.Equal(t, "bob jones", Name("Bob Jones Jr"))
	assert.Equal(t, "bob jones", Name("Bob Jones, Jr"))
}

func TestName_RemovesMiddleInitial(t *testing.T) {
	assert.Equal(t, "john smith", Name("John Q Smith"))
}

func TestName_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "ann lee", Name("Ann    Lee"))
}

func TestName_LastCommaFirstReordered(t *testing.T) {
	assert.Equal(t, "ada lovelace", Name("Lovelace, Ada"))
}

func TestName_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Name(""))
}

func TestName_IsIdempotent(t *testing.T) {
	once := Name("García-Jones, María J. III")
	twice := Name(once)
	assert.Equal(t, once, twice)
}
