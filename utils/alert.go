package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
)

// alert request payload for ZeptoMail API
type alertRequest struct {
	From     alertAddress     `json:"from"`
	To       []alertRecipient `json:"to"`
	Subject  string           `json:"subject"`
	HtmlBody string           `json:"htmlbody"`
}

type alertAddress struct {
	Address string `json:"address"`
}

type alertRecipient struct {
	Email alertWithName `json:"email_address"`
}

type alertWithName struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// SendAlert emails the ops address through the ZeptoMail HTTP API. The
// dashboard calls it once per failed collection fetch.
func SendAlert(subject, body string) error {
	apiURL := os.Getenv("ZEPTO_API_URL") // e.g. https://api.zeptomail.com/v1.1/email
	apiKey := os.Getenv("ZEPTO_API_KEY") // e.g. Zoho-enczapikey xxxxx
	from := os.Getenv("ALERT_FROM")      // e.g. noreply@cheerain.app
	to := os.Getenv("ALERT_TO")          // ops address
	toName := os.Getenv("ALERT_TO_NAME") // display name for the recipient

	if apiURL == "" || apiKey == "" || from == "" || to == "" {
		log.Println("Missing ZEPTO_API_URL, ZEPTO_API_KEY, ALERT_FROM, or ALERT_TO")
		return fmt.Errorf("missing required alert config")
	}

	payload := alertRequest{
		From: alertAddress{Address: from},
		To: []alertRecipient{
			{
				Email: alertWithName{
					Address: to,
					Name:    toName,
				},
			},
		},
		Subject:  subject,
		HtmlBody: body,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal alert payload: %v", err)
		return err
	}

	req, err := http.NewRequest("POST", apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		log.Printf("Failed to create request: %v", err)
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", apiKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("Failed to send alert: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusOK {
		log.Printf("ZeptoMail returned status %s", resp.Status)
		return fmt.Errorf("zeptomail API error: %s", resp.Status)
	}

	log.Printf("Alert sent to %s", to)
	return nil
}
