package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/resend/resend-go/v2"

	"github.com/MotorDesk/policy-extraction-backend/config"
	"github.com/MotorDesk/policy-extraction-backend/logger"
)

type EmailMetrics struct {
	sendLatency prometheus.Histogram
	errorCount  prometheus.Counter
	sentCount   prometheus.Counter
}

// EmailService sends drain-completion summaries through Resend. It implements
// DrainNotifier.
type EmailService struct {
	config  *config.EmailConfig
	client  *resend.Client
	metrics *EmailMetrics
}

func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return NewEmailServiceWithRegistry(cfg, prometheus.DefaultRegisterer)
}

func NewEmailServiceWithRegistry(cfg *config.EmailConfig, reg prometheus.Registerer) *EmailService {
	logger.GetLogger().Infow("Initializing email service", "from", cfg.FromAddress)
	client := resend.NewClient(cfg.ResendAPIKey)
	metrics := &EmailMetrics{
		sendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "motordesk_email_send_duration_seconds",
			Help:    "Time taken to send emails",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		}),
		errorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "motordesk_email_errors_total",
			Help: "Total number of email sending errors",
		}),
		sentCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "motordesk_emails_sent_total",
			Help: "Total number of emails sent",
		}),
	}

	reg.MustRegister(metrics.sendLatency)
	reg.MustRegister(metrics.errorCount)
	reg.MustRegister(metrics.sentCount)

	return &EmailService{
		config:  cfg,
		client:  client,
		metrics: metrics,
	}
}

// NotifyDrainComplete sends a summary of a finished drain run. Failures are
// logged and swallowed; a lost notification must never affect the pipeline.
func (s *EmailService) NotifyDrainComplete(ctx context.Context, summary DrainSummary) {
	log := logger.GetLogger()
	startTime := time.Now()
	defer func() {
		s.metrics.sendLatency.Observe(time.Since(startTime).Seconds())
	}()

	tmpl, err := template.New("drain-summary").Parse(drainSummaryEmailTemplate)
	if err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to parse email template", "error", err)
		return
	}

	var htmlContent bytes.Buffer
	if err := tmpl.Execute(&htmlContent, map[string]any{
		"CompanyID": summary.CompanyID,
		"Processed": summary.Processed,
		"Failed":    summary.Failed,
		"Duration":  summary.Duration.Round(time.Second).String(),
	}); err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to execute email template", "error", err)
		return
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromAddress),
		To:      []string{s.config.ToAddress},
		Subject: fmt.Sprintf("Policy extraction run finished for %s", summary.CompanyID),
		Html:    htmlContent.String(),
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to send drain summary email",
			"error", err,
			"company_id", summary.CompanyID)
		return
	}

	s.metrics.sentCount.Inc()
	log.Infow("Drain summary email sent",
		"company_id", summary.CompanyID,
		"processed", summary.Processed)
}

const drainSummaryEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Policy Extraction Run Complete</title>
    <style>
        body {
            font-family: 'sans-serif';
            background-color: #f7f7f7;
            color: #333333;
            margin: 0;
            padding: 20px;
        }
        .container {
            max-width: 600px;
            margin: 20px auto;
            background-color: #ffffff;
            padding: 30px;
            border-radius: 12px;
            box-shadow: 0 4px 8px rgba(0, 0, 0, 0.05);
        }
        h1 {
            color: #1A73E8;
            font-size: 24px;
            margin-bottom: 20px;
        }
        table {
            width: 100%;
            border-collapse: collapse;
        }
        td {
            padding: 8px 4px;
            font-size: 15px;
            border-bottom: 1px solid #eeeeee;
        }
        td.label {
            color: #777777;
            width: 45%;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>Extraction Run Complete</h1>
        <table>
            <tr><td class="label">Company</td><td>{{.CompanyID}}</td></tr>
            <tr><td class="label">Documents processed</td><td>{{.Processed}}</td></tr>
            <tr><td class="label">Report failures</td><td>{{.Failed}}</td></tr>
            <tr><td class="label">Duration</td><td>{{.Duration}}</td></tr>
        </table>
    </div>
</body>
</html>`
