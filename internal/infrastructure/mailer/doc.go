// Package mailer renders mail templates and delivers the result through an
// SMTP or logging transport.
package mailer
