package main

import (
	"testing"

	"github.com/myasir/portfolio-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateSubmission(t *testing.T) {
	valid := models.ContactSubmission{Name: "Jane", Email: "jane@example.com", Subject: "Hi", Message: "Hello"}
	assert.NoError(t, validateSubmission(valid))

	bad := valid
	bad.Email = "not-an-email"
	bad.Subject = " "
	err := validateSubmission(bad)
	assert.EqualError(t, err, "invalid submission: --email (email), --subject (notblank)")
}

func TestRootCommand(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["send-test"])
	assert.True(t, names["version"])
	assert.NotNil(t, rootCmd.RunE)
}
