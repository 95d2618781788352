package service

import (
	"bytes"
	"html/template"
	"time"
)

// Email subjects used by the appointment workflow.
const (
	SubjectVerification = "Appointment Verification"
	SubjectConfirmation = "Appointment Confirmation"
)

var verificationTemplate = template.Must(template.New("otp-verification").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>DocConnect</h2>
  <p>Dear {{.Name}},</p>
  <p>Use the code below to confirm your appointment with <strong>{{.Doctor}}</strong>.</p>
  <p style="font-size: 24px; letter-spacing: 4px;"><strong>{{.Code}}</strong></p>
  <p>The code expires in 2 minutes.</p>
  <p>If you did not request this appointment, you can ignore this email.</p>
</body>
</html>`))

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>DocConnect</h2>
  <p>Dear {{.Name}},</p>
  <p>Your appointment with <strong>{{.Doctor}}</strong> is confirmed.</p>
  <p>Date: <strong>{{.Date}}</strong><br/>Time: <strong>{{.Time}}</strong></p>
  <p>Please arrive a few minutes early and bring this email with you.</p>
</body>
</html>`))

// RenderVerificationEmail renders the OTP email body.
func RenderVerificationEmail(patientName, doctorName, code string) (string, error) {
	var buf bytes.Buffer
	err := verificationTemplate.Execute(&buf, map[string]string{
		"Name":   patientName,
		"Doctor": doctorName,
		"Code":   code,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderConfirmationEmail renders the booking confirmation body.
func RenderConfirmationEmail(patientName, doctorName string, date time.Time, timeOfDay string) (string, error) {
	var buf bytes.Buffer
	err := confirmationTemplate.Execute(&buf, map[string]string{
		"Name":   patientName,
		"Doctor": doctorName,
		"Date":   date.Format("02 Jan 2006"),
		"Time":   timeOfDay,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
