package utils

import (
	"fmt"
	"log"

	"github.com/WaiYanHtun11/LLPMM-Online-Campus-sub001/config"

	"github.com/go-resty/resty/v2"
)

// SendPaymentReminderSMS notifies a student about an overdue installment
// through the local SMS gateway. Skipped when the gateway is not configured.
func SendPaymentReminderSMS(mobile string, amount int64, courseTitle string) error {
	if config.AppConfig.LocalTextApiUrl == "defaultSecret" || mobile == "" {
		return nil
	}

	message := fmt.Sprintf("LLPMM Online Campus: your installment of %s MMK for %s is overdue. Please visit the office to settle it.", FormatAmount(amount), courseTitle)

	client := resty.New()
	resp, err := client.R().
		SetFormData(map[string]string{
			"api_key": config.AppConfig.LocalTextApi,
			"to":      mobile,
			"message": message,
		}).
		Post(config.AppConfig.LocalTextApiUrl)
	if err != nil {
		log.Printf("Error while sending payment reminder SMS: %v", err)
		return err
	}
	if resp.StatusCode() != 200 {
		log.Printf("Failed to send payment reminder SMS, response code: %d", resp.StatusCode())
		return fmt.Errorf("failed to send payment reminder SMS, code: %d", resp.StatusCode())
	}

	return nil
}
