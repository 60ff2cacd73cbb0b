package models

import (
	"context"

	"gorm.io/gorm"
)

// AddPerson creates a person along with its phone numbers & returns the new person's id.
// Nothing is written if any of the inserts fail
func (store *Store) AddPerson(ctx context.Context, firstName, lastName, email string, phones ...string) (uint, error) {
	fields := PersonChanges{FirstName: &firstName, LastName: &lastName, Email: &email, Phones: &phones}
	if err := fields.validate(); err != nil {
		return 0, err
	}

	person := Person{FirstName: firstName, LastName: lastName, Email: email}

	err := store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&person).Error; err != nil {
			return err
		}

		if len(phones) == 0 {
			return nil
		}

		phoneRecords := newPhones(person.ID, phones)
		return tx.Create(&phoneRecords).Error
	})
	if err != nil {
		return 0, translateError(err)
	}

	return person.ID, nil
}

// UpdatePerson writes every non-nil field of changes to the person with the given id.
// When changes.Phones is set, the person's phones are replaced by exactly that list
func (store *Store) UpdatePerson(ctx context.Context, personID uint, changes PersonChanges) error {
	if changes.isEmpty() {
		return nil
	}

	if err := changes.validate(); err != nil {
		return err
	}

	data := map[string]interface{}{}
	if changes.FirstName != nil {
		data["first_name"] = *changes.FirstName
	}
	if changes.LastName != nil {
		data["last_name"] = *changes.LastName
	}
	if changes.Email != nil {
		data["email"] = *changes.Email
	}

	err := store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(data) > 0 {
			err := tx.Model(&Person{}).Where("user_id = ?", personID).Updates(data).Error
			if err != nil {
				return err
			}
		}

		if changes.Phones == nil {
			return nil
		}

		if err := tx.Where("user_id = ?", personID).Delete(&Phone{}).Error; err != nil {
			return err
		}

		if len(*changes.Phones) == 0 {
			return nil
		}

		phoneRecords := newPhones(personID, *changes.Phones)
		return tx.Create(&phoneRecords).Error
	})

	return translateError(err)
}

// DeletePerson removes the person with the given id & all of its phones.
// Deleting a person that doesn't exist is a no-op
func (store *Store) DeletePerson(ctx context.Context, personID uint) error {
	err := store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", personID).Delete(&Phone{}).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", personID).Delete(&Person{}).Error
	})

	return translateError(err)
}

// FindPerson returns one row per (person, phone) pair matching every non-nil criterion.
// A person without phones is returned once, with a nil phone
func (store *Store) FindPerson(ctx context.Context, criteria FindCriteria) ([]Match, error) {
	matches := []Match{}

	query := store.db.WithContext(ctx).
		Table("users AS u").
		Select("u.user_id, u.first_name, u.last_name, u.email, p.phone").
		Joins("LEFT JOIN phones AS p ON u.user_id = p.user_id")

	if criteria.FirstName != nil {
		query = query.Where("u.first_name = ?", *criteria.FirstName)
	}
	if criteria.LastName != nil {
		query = query.Where("u.last_name = ?", *criteria.LastName)
	}
	if criteria.Email != nil {
		query = query.Where("u.email = ?", *criteria.Email)
	}
	if criteria.Phone != nil {
		query = query.Where("p.phone = ?", *criteria.Phone)
	}

	err := query.Order("u.user_id, p.phone_id").Scan(&matches).Error
	if err != nil {
		return nil, translateError(err)
	}

	return matches, nil
}
