// Package mail – message templates
//
// The HTML bodies for the two notification emails. html/template escapes all
// submitted values, so user input cannot inject markup into either message.
package mail

import "html/template"

// adminData feeds the admin alert template.
type adminData struct {
	Name      string
	Email     string
	Phone     string
	Service   string
	Message   string
	ContactID int64
	Submitted string
}

// customerData feeds the confirmation template. All contact details come
// from configuration.
type customerData struct {
	Name          string
	CompanyName   string
	ContactPhone  string
	ContactEmail  string
	ContactOffice string
}

var adminTmpl = template.Must(template.New("admin").Parse(`
<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Service Interest:</strong> {{.Service}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
<hr>
<p><small>Contact ID: {{.ContactID}}</small></p>
<p><small>Submitted: {{.Submitted}}</small></p>
`))

var customerTmpl = template.Must(template.New("customer").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2 style="color: #0066cc;">Thank You, {{.Name}}!</h2>
    <p>We've received your consultation request and one of our team members will contact you soon.</p>
    <p>In the meantime, feel free to reach out to us directly:</p>
    <ul>
        <li><strong>Phone:</strong> {{.ContactPhone}}</li>
        <li><strong>Email:</strong> {{.ContactEmail}}</li>
        <li><strong>Office:</strong> {{.ContactOffice}}</li>
    </ul>
    <hr>
    <p style="color: #666; font-size: 12px;">
        {{.CompanyName}} - Protecting What Matters Most<br>
        <a href="mailto:{{.ContactEmail}}">{{.ContactEmail}}</a>
    </p>
</div>
`))
