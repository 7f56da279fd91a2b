package ld

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAbsoluteIRI(t *testing.T) {
	assert.True(t, IsAbsoluteIRI("http://example.org/x"))
	assert.False(t, IsAbsoluteIRI("urn:isbn:1234")) // no "//" after the scheme
	assert.False(t, IsAbsoluteIRI("name"))
	assert.False(t, IsAbsoluteIRI("ex:name")) // no "//" after the scheme
}

func TestIsFetchableURL(t *testing.T) {
	assert.True(t, IsFetchableURL("http://example.org/ctx"))
	assert.True(t, IsFetchableURL("https://example.org/ctx"))
	assert.False(t, IsFetchableURL("ftp://example.org/ctx"))
	assert.False(t, IsFetchableURL("urn:isbn:1234"))
}
