// Package challenge provides reCAPTCHA v3 challenge widgets.
//
// Browser drives a headless Chrome through go-rod: it opens the page the site
// key is registered for, loads the reCAPTCHA script and resolves
// grecaptcha.execute. Static returns a fixed token and backs the dev server
// and tests.
package challenge
