package services

import (
	"bytes"
	"html/template"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MotorDesk/policy-extraction-backend/config"
)

func TestNewEmailServiceWithRegistry(t *testing.T) {
	svc := NewEmailServiceWithRegistry(&config.EmailConfig{
		ResendAPIKey: "test-key",
		FromAddress:  "pipeline@motordesk.example",
		FromName:     "MotorDesk Pipeline",
		ToAddress:    "ops@motordesk.example",
	}, prometheus.NewRegistry())

	require.NotNil(t, svc)
	require.NotNil(t, svc.client)
	require.NotNil(t, svc.metrics)
}

func TestDrainSummaryTemplate(t *testing.T) {
	tmpl, err := template.New("drain-summary").Parse(drainSummaryEmailTemplate)
	require.NoError(t, err)

	var out bytes.Buffer
	err = tmpl.Execute(&out, map[string]any{
		"CompanyID": "company-1",
		"Processed": 17,
		"Failed":    2,
		"Duration":  "3m12s",
	})
	require.NoError(t, err)

	html := out.String()
	assert.Contains(t, html, "company-1")
	assert.Contains(t, html, "17")
	assert.Contains(t, html, "3m12s")
}
