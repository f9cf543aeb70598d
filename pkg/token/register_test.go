package token

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIdempotent(t *testing.T) {
	// Register same name twice
	id1 := Register("test_idempotent")
	id2 := Register("test_idempotent")

	assert.Equal(t, id1, id2, "same name should return same kind")
}

func TestRegisterDifferentNames(t *testing.T) {
	id1 := Register("test_name_a")
	id2 := Register("test_name_b")

	assert.NotEqual(t, id1, id2, "different names should return different kinds")
}

func TestRegisterConcurrent(t *testing.T) {
	const numGoroutines = 100
	var wg sync.WaitGroup
	ids := make([]Kind, numGoroutines)

	// Register same name concurrently
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			ids[idx] = Register("test_concurrent")
		}(i)
	}
	wg.Wait()

	// All should have the same kind
	for i := 1; i < numGoroutines; i++ {
		require.Equal(t, ids[0], ids[i], "concurrent registration should return same kind")
	}
}

func TestLookupIdentFindsDynamicKeywords(t *testing.T) {
	k := Register("test_lookup")

	got, ok := LookupDynamicKeyword("test_lookup")
	require.True(t, ok, "registered keyword should be found")
	assert.Equal(t, k, got)

	assert.Equal(t, k, LookupIdent("test_lookup"))
	assert.Equal(t, IDENT, LookupIdent("never_registered_xyz"))
}

func TestLookupIdentBuiltins(t *testing.T) {
	assert.Equal(t, LET, LookupIdent("let"))
	// Keywords are case-sensitive
	assert.Equal(t, IDENT, LookupIdent("Let"))
	assert.Equal(t, IDENT, LookupIdent("x"))
}

func TestIsDynamic(t *testing.T) {
	assert.False(t, IsDynamic(LET))
	assert.False(t, IsDynamic(IDENT))
	assert.True(t, IsDynamic(Register("test_is_dynamic")))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "IDENT", IDENT.String())
	assert.Equal(t, "{", LBRACE.String())
	assert.Equal(t, "let", LET.String())

	k := Register("test_kind_string")
	assert.Equal(t, "test_kind_string", k.String())
}
