// Package web serves the contact-web HTML surface: the demo routes, the contact
// form workflow and the CRUD sub-application mounted under /crud.
package web
