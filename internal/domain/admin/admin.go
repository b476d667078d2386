package admin

type Admin struct {
	ID           int64
	Username     string
	Name         string
	PasswordHash string
	RoleCode     RoleCode
}
