package siasisten

// Session is what a successful login hands back to the dashboard. The portal
// keeps no server-side state for us; the caller stores and replays it.
type Session struct {
	Username  string `json:"username"`
	SessionID string `json:"sessionId"`
	CSRFToken string `json:"csrfToken"`
}

func (s Session) Credentials() Credentials {
	return Credentials{SessionID: s.SessionID, CSRFToken: s.CSRFToken}
}

// Vacancy is one row of the "Lowongan Asisten" list.
type Vacancy struct {
	No           string `json:"No"`
	Course       string `json:"Mata Kuliah"`
	Semester     string `json:"Semester"`
	AcademicYear string `json:"Tahun Ajaran"`
	Lecturers    string `json:"Dosen"`
	LogListLink  string `json:"Log Asisten Link"`
	LogID        string `json:"LogID"`
}

// ActivityLog is one reported work session. Date is DD-MM-YYYY, times HH:MM.
type ActivityLog struct {
	No          string `json:"No"`
	Date        string `json:"Tanggal"`
	Start       string `json:"Jam Mulai"`
	End         string `json:"Jam Selesai"`
	Duration    int    `json:"Durasi (Menit)"`
	Category    string `json:"Kategori"`
	Description string `json:"Deskripsi Tugas"`
	Status      string `json:"Status"`
	Operation   string `json:"Operation"`
	ActionLink  string `json:"Pesan Link"`
	LogID       string `json:"LogID"`
	Course      string `json:"Mata Kuliah,omitempty"`
}

// LogPage is the parsed log page of a single vacancy.
type LogPage struct {
	Logs          []ActivityLog `json:"logs"`
	CreateLogLink *string       `json:"createLogLink"`
	CreateLogID   string        `json:"createLogId,omitempty"`
}

// FinanceRecord is one payment row. Amount keeps the portal formatting
// ("Rp 1.234.567,00"); see finance.ParseRupiah.
type FinanceRecord struct {
	NPM    string `json:"NPM"`
	Name   string `json:"Nama"`
	Month  string `json:"Bulan"`
	Course string `json:"Mata_Kuliah"`
	Hours  string `json:"Jumlah_Jam"`
	Rate   string `json:"Honor_Per_Jam"`
	Amount string `json:"Jumlah_Pembayaran"`
	Status string `json:"Status"`
}

// IsPlaceholder reports whether r is the empty row persisted for a month the
// portal had no payments for.
func (r FinanceRecord) IsPlaceholder() bool {
	return r == FinanceRecord{}
}

type Date struct {
	Day   int `json:"day,string" validate:"min=1,max=31"`
	Month int `json:"month,string" validate:"min=1,max=12"`
	Year  int `json:"year,string" validate:"min=2000,max=2100"`
}

type Clock struct {
	Hour   int `json:"hour,string" validate:"min=0,max=23"`
	Minute int `json:"minute,string" validate:"min=0,max=59"`
}

// LogForm is the body of the portal's create and update log forms.
type LogForm struct {
	Category    string `json:"kategori_log" validate:"required"`
	Description string `json:"deskripsi" validate:"required"`
	Date        Date   `json:"tanggal"`
	Start       Clock  `json:"waktu_mulai"`
	End         Clock  `json:"waktu_selesai"`
}
