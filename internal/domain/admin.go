package domain

type Admin struct {
	ID           uint
	Username     string
	PasswordHash []byte
}
