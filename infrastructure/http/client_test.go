package http_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infrahttp "github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/http"
)

func TestNewClient_Defaults(t *testing.T) {
	t.Parallel()

	c := infrahttp.NewClient(infrahttp.ClientConfig{})
	assert.Equal(t, infrahttp.DefaultTimeout, c.Timeout)

	tr, ok := c.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, infrahttp.DefaultMaxIdleConnsPerHost, tr.MaxIdleConnsPerHost)
	assert.Equal(t, infrahttp.DefaultIdleConnTimeout, tr.IdleConnTimeout)
}

func TestNewClient_Overrides(t *testing.T) {
	t.Parallel()

	c := infrahttp.NewClient(infrahttp.ClientConfig{Timeout: 2 * time.Second, MaxIdleConnsPerHost: 3})
	assert.Equal(t, 2*time.Second, c.Timeout)
	assert.Equal(t, 3, c.Transport.(*http.Transport).MaxIdleConnsPerHost)
}
