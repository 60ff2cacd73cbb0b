package models

// Column lengths, in characters
const (
	MAX_FIRST_NAME_LENGTH = 40
	MAX_LAST_NAME_LENGTH  = 60
	MAX_EMAIL_LENGTH      = 80
	MAX_PHONE_LENGTH      = 12
)

// Person is a client record, stored in the 'users' table
type Person struct {
	ID        uint   `json:"id" gorm:"column:user_id;primaryKey"`
	FirstName string `json:"first_name" gorm:"column:first_name"`
	LastName  string `json:"last_name" gorm:"column:last_name"`
	Email     string `json:"email" gorm:"column:email"`
}

func (Person) TableName() string {
	return "users"
}

// Phone is a phone number owned by exactly one person
type Phone struct {
	ID       uint   `json:"id" gorm:"column:phone_id;primaryKey"`
	Phone    string `json:"phone" gorm:"column:phone"`
	PersonID uint   `json:"person_id" gorm:"column:user_id"`
}

func (Phone) TableName() string {
	return "phones"
}

// Match is a single (person, phone) row returned by FindPerson.
// Phone is nil for a person without any phone numbers
type Match struct {
	PersonID  uint    `json:"id" gorm:"column:user_id"`
	FirstName string  `json:"first_name" gorm:"column:first_name"`
	LastName  string  `json:"last_name" gorm:"column:last_name"`
	Email     string  `json:"email" gorm:"column:email"`
	Phone     *string `json:"phone" gorm:"column:phone"`
}

// PersonChanges holds the fields UpdatePerson should write.
// A nil field is left untouched, an empty (non-nil) value is written as is.
// A non-nil Phones replaces every phone of the person, even with an empty list
type PersonChanges struct {
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	Email     *string   `json:"email"`
	Phones    *[]string `json:"phones"`
}

// FindCriteria filters FindPerson. Every non-nil field must match exactly
type FindCriteria struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
}

func (changes PersonChanges) isEmpty() bool {
	return changes.FirstName == nil && changes.LastName == nil && changes.Email == nil && changes.Phones == nil
}

// StringPtr returns a pointer to s, for building PersonChanges & FindCriteria
func StringPtr(s string) *string {
	return &s
}

// PhonesPtr returns a pointer to phones, for building PersonChanges
func PhonesPtr(phones ...string) *[]string {
	if phones == nil {
		phones = []string{}
	}
	return &phones
}

func newPhones(personID uint, numbers []string) []Phone {
	phones := make([]Phone, 0, len(numbers))
	for _, number := range numbers {
		phones = append(phones, Phone{Phone: number, PersonID: personID})
	}
	return phones
}
