package email

import (
	"fmt"
)

// CompanyEmailData contains the data needed for company approval emails.
type CompanyEmailData struct {
	CompanyName string
	Email       string
	AppName     string
	BaseURL     string
}

// BuildCompanyApprovedEmail creates the email sent when an admin approves a company.
func BuildCompanyApprovedEmail(data CompanyEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "InternLink"
	}

	companyName := data.CompanyName
	if companyName == "" {
		companyName = "there"
	}

	subject := fmt.Sprintf("Your %s company account has been approved", appName)

	textBody := fmt.Sprintf(`Hi %s,

Good news! Your company profile on %s has been approved.

You can now post internships and review applications:
%s

Thanks,
The %s Team`,
		companyName, appName, data.BaseURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #16a34a;">Hi %s,</h2>
    <p>Good news! Your company profile on %s has been approved.</p>
    <p>You can now post internships and review applications:</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #16a34a; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Go to Dashboard</a>
    </p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		companyName, appName, data.BaseURL, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildCompanyRejectedEmail creates the email sent when an admin rejects a company.
func BuildCompanyRejectedEmail(data CompanyEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "InternLink"
	}

	companyName := data.CompanyName
	if companyName == "" {
		companyName = "there"
	}

	subject := fmt.Sprintf("Your %s company registration was not approved", appName)

	textBody := fmt.Sprintf(`Hi %s,

Unfortunately your company registration on %s was not approved.

If you believe this is a mistake, you can register again with
complete and accurate company details.

Thanks,
The %s Team`,
		companyName, appName, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Unfortunately your company registration on %s was not approved.</p>
    <p>If you believe this is a mistake, you can register again with complete and accurate company details.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		companyName, appName, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// ApplicationEmailData contains the data needed for application status emails.
type ApplicationEmailData struct {
	StudentName     string
	Email           string
	InternshipTitle string
	CompanyName     string
	Status          string
	AppName         string
}

// BuildApplicationStatusEmail creates the email sent to a student when a
// company updates the status of their application.
func BuildApplicationStatusEmail(data ApplicationEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "InternLink"
	}

	studentName := data.StudentName
	if studentName == "" {
		studentName = "there"
	}

	subject := fmt.Sprintf("Update on your application for %s", data.InternshipTitle)

	textBody := fmt.Sprintf(`Hi %s,

Your application for "%s" at %s has been updated.

New status: %s

Log in to %s to see the details.

Thanks,
The %s Team`,
		studentName, data.InternshipTitle, data.CompanyName, data.Status, appName, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Your application for <strong>%s</strong> at %s has been updated.</p>
    <p style="text-align: center; margin: 30px 0; background-color: #f3f4f6; padding: 20px; border-radius: 6px;">
        <span style="font-size: 12px; color: #6b7280;">New status</span><br>
        <span style="font-size: 24px; font-weight: bold; color: #000;">%s</span>
    </p>
    <p>Log in to %s to see the details.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		studentName, data.InternshipTitle, data.CompanyName, data.Status, appName, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildWelcomeEmail creates the email sent after successful registration.
func BuildWelcomeEmail(email, name, userType string) Message {
	const appName = "InternLink"

	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("Welcome to %s", appName)

	textBody := fmt.Sprintf(`Hi %s,

Your %s account on %s has been created.

Complete your profile to get the most out of the portal.

Thanks,
The %s Team`,
		name, userType, appName, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Your %s account on %s has been created.</p>
    <p>Complete your profile to get the most out of the portal.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, userType, appName, appName)

	return Message{
		To:       []string{email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
