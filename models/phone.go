package models

import (
	"context"
)

// AddPhone adds a phone number to an existing person
func (store *Store) AddPhone(ctx context.Context, personID uint, phone string) error {
	if err := validateLength(phone, MAX_PHONE_LENGTH); err != nil {
		return err
	}

	record := Phone{Phone: phone, PersonID: personID}

	err := store.db.WithContext(ctx).Create(&record).Error
	return translateError(err)
}

// DeletePhone removes the phone number from the person, if the person has it
func (store *Store) DeletePhone(ctx context.Context, personID uint, phone string) error {
	err := store.db.WithContext(ctx).
		Where("user_id = ? AND phone = ?", personID, phone).
		Delete(&Phone{}).Error

	return translateError(err)
}
