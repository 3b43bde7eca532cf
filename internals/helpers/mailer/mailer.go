package mailer

import (
	"fmt"
	"log"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"staffhub_backend/internals/configs"
)

/* =======================================================
   MAILER (SendGrid)
   Dipakai untuk email kredensial member baru & reminder interview.
   Jika SENDGRID_API_KEY kosong, email hanya dicetak ke log.
======================================================= */

var (
	sgHost     = "https://api.sendgrid.com"
	sgEndpoint = "/v3/mail/send"
)

type Message struct {
	ToName  string
	ToEmail string
	Subject string
	Text    string
	HTML    string
}

// Send mengirim email secara sinkron. Error tidak fatal bagi caller:
// pemanggil memutuskan sendiri apakah kegagalan kirim menggagalkan request.
func Send(msg Message) error {
	if configs.SendgridAPIKey == "" {
		log.Printf("[MAILER] (dry-run) to=%s subject=%q", msg.ToEmail, msg.Subject)
		return nil
	}

	from := sgmail.NewEmail(configs.MailFromName, configs.MailFromAddress)
	to := sgmail.NewEmail(msg.ToName, msg.ToEmail)

	p := sgmail.NewPersonalization()
	p.Subject = msg.Subject
	p.AddTos(to)

	m := sgmail.NewV3Mail()
	m.SetFrom(from)
	m.AddPersonalizations(p)

	if msg.Text != "" {
		m.AddContent(sgmail.NewContent("text/plain", msg.Text))
	}
	if msg.HTML != "" {
		m.AddContent(sgmail.NewContent("text/html", msg.HTML))
	}

	req := sendgrid.GetRequest(configs.SendgridAPIKey, sgEndpoint, sgHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m)

	res, err := sendgrid.API(req)
	if err != nil {
		return fmt.Errorf("kirim email: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("kirim email: status %d body %s", res.StatusCode, res.Body)
	}
	return nil
}

// SendAsync menjalankan Send di goroutine; kegagalan hanya dicatat ke log.
func SendAsync(msg Message) {
	go func() {
		if err := Send(msg); err != nil {
			log.Printf("[MAILER][ERROR] %v", err)
		}
	}()
}
