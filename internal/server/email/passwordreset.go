package email

type PasswordResetData struct {
	Name string
	Link string
}

func SendPasswordReset(name, address string, data PasswordResetData) error {
	return SendTemplate(name, address, EmailTemplatePasswordReset, map[string]interface{}{
		"name": data.Name,
		"link": data.Link,
	})
}
