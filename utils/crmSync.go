package utils

import (
	"log"
	"time"

	"lms/config"

	"github.com/go-resty/resty/v2"
)

// SyncUserToCRM pushes a newly registered user to the external CRM endpoint.
// A failure is logged and swallowed; registration never depends on the CRM
// being reachable. Intended to run in a goroutine after signup.
func SyncUserToCRM(name, email, role string) {
	if config.AppConfig.CrmSyncURL == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"name":  name,
			"email": email,
			"role":  role,
		}).
		Post(config.AppConfig.CrmSyncURL)

	if err != nil {
		log.Printf("CRM sync failed for %s: %v", email, err)
		return
	}
	if resp.IsError() {
		log.Printf("CRM sync rejected for %s: %s", email, resp.Status())
		return
	}
	log.Printf("User synced to CRM: %s", email)
}
