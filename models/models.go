package models

import "time"

// Default status values assigned when a record is created without one.
const (
	StatusActive    = "active"    // courses, campuses, students
	StatusScheduled = "scheduled" // training sessions
	StatusConfirmed = "confirmed" // bookings
)

// Course is a bookable training course.
type Course struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Duration    string    `json:"duration"`
	Price       float64   `json:"price"`
	MaxCapacity int       `json:"maxCapacity"`
	Status      string    `json:"status"`
	Image       string    `json:"image"`
	Code        string    `json:"code,omitempty"`
	Category    string    `json:"category,omitempty"`
	Campuses    []int     `json:"campuses,omitempty"` // ids of campuses offering this course
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Campus is a physical training location.
type Campus struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Status  string `json:"status,omitempty"`
}

// TrainingSession is a scheduled run of a course at a campus.
//
// CourseName and CampusName are copied from the referenced course and campus
// when the session is created and are never refreshed afterwards; renaming a
// course leaves existing sessions showing the old name.
type TrainingSession struct {
	ID          int    `json:"id"`
	CourseID    int    `json:"courseId"`
	CourseName  string `json:"courseName"`
	CampusID    int    `json:"campusId"`
	CampusName  string `json:"campusName"`
	Date        string `json:"date"` // calendar date, YYYY-MM-DD
	Enrolled    int    `json:"enrolled"`
	MaxCapacity int    `json:"maxCapacity"`
	Status      string `json:"status"`
}

// Student is a person registered with the training centre.
type Student struct {
	ID               int       `json:"id"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	RegistrationDate time.Time `json:"registrationDate"`
	Status           string    `json:"status"`
}

// Booking reserves a place on a training session. The confirmation code is
// the human-facing identifier, separate from the integer id.
type Booking struct {
	ID               int       `json:"id"`
	ConfirmationCode string    `json:"confirmationCode"`
	BookingDate      time.Time `json:"bookingDate"`
	Status           string    `json:"status"`
	SessionID        int       `json:"sessionId"`
	StudentID        int       `json:"studentId,omitempty"`
	FirstName        string    `json:"firstName,omitempty"`
	LastName         string    `json:"lastName,omitempty"`
	Email            string    `json:"email,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	Notes            string    `json:"notes,omitempty"`
}

// CoursePatch carries a partial course update. Nil fields are left untouched.
type CoursePatch struct {
	Name        *string
	Description *string
	Duration    *string
	Price       *float64
	MaxCapacity *int
	Status      *string
	Image       *string
	Code        *string
	Category    *string
	Campuses    []int
}

// CampusPatch carries a partial campus update. Nil fields are left untouched.
type CampusPatch struct {
	Name    *string
	Address *string
	Status  *string
}

// SessionPatch carries a partial training-session update. Nil fields are left
// untouched. The denormalized names are deliberately not updatable here.
type SessionPatch struct {
	Date        *string
	Enrolled    *int
	MaxCapacity *int
	Status      *string
}

// Snapshot is the serialisable representation of the whole data graph, and
// the exact value stored in the persistence slot.
type Snapshot struct {
	Courses          []Course          `json:"courses"`
	Campuses         []Campus          `json:"campuses"`
	TrainingSessions []TrainingSession `json:"trainingSessions"`
	Students         []Student         `json:"students"`
	Bookings         []Booking         `json:"bookings"`
}

// Statistics summarises the current data graph for dashboards.
type Statistics struct {
	TotalBookings    int `json:"totalBookings"`
	TotalStudents    int `json:"totalStudents"`
	ActiveCourses    int `json:"activeCourses"`
	TotalCampuses    int `json:"totalCampuses"`
	UpcomingSessions int `json:"upcomingSessions"`
}

// User is a built-in back-office account.
type User struct {
	Username    string `json:"username"`
	Password    string `json:"-"`
	Role        string `json:"role"`
	DisplayName string `json:"displayName"`
}
