//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap round-trips a request DTO through JSON so individual fields
// can be overridden or removed before sending it over the test router.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err, "failed to marshal DTO")

	m := map[string]any{}
	require.NoError(t, json.Unmarshal(b, &m), "failed to unmarshal DTO into map")

	for _, mut := range muts {
		mut(m)
	}
	return m
}
