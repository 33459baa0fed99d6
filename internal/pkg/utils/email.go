package utils

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{9,14}$`)

// IsValidEmail проверяет адрес почты.
// Адреса с "do-not-respond" отбрасываются - на них нельзя отвечать.
func IsValidEmail(email string) bool {
	if strings.Contains(email, "do-not-respond") {
		return false
	}
	return emailPattern.MatchString(email)
}

// IsValidPhoneNumber - базовая E.164-проверка номера телефона
func IsValidPhoneNumber(phone string) bool {
	phone = strings.ReplaceAll(phone, " ", "")
	return phonePattern.MatchString(phone)
}
