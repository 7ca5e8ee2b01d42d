// Package inquiries defines messages sent by visitors through the contact form.
package inquiries
