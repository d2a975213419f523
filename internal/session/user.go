package session

// User: identitas yang disubmit form sign-in/sign-up, dipercaya apa adanya
// (tidak divalidasi ke credential store mana pun). Record absen = guest.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
