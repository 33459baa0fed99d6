package repository

// MailRepository - отправка исходящей почты
type MailRepository interface {
	// SendPasswordResetCode отправляет пользователю код восстановления пароля
	SendPasswordResetCode(to, code string) error
}
