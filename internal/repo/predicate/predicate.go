// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// BloodDonation is the predicate function for blooddonation builders.
type BloodDonation func(*sql.Selector)

// BloodRequest is the predicate function for bloodrequest builders.
type BloodRequest func(*sql.Selector)

// Doctor is the predicate function for doctor builders.
type Doctor func(*sql.Selector)

// Donation is the predicate function for donation builders.
type Donation func(*sql.Selector)

// DonationInitiative is the predicate function for donationinitiative builders.
type DonationInitiative func(*sql.Selector)

// EmergencyContact is the predicate function for emergencycontact builders.
type EmergencyContact func(*sql.Selector)

// FamilyMember is the predicate function for familymember builders.
type FamilyMember func(*sql.Selector)

// HealthMetric is the predicate function for healthmetric builders.
type HealthMetric func(*sql.Selector)

// Medication is the predicate function for medication builders.
type Medication func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Pharmacy is the predicate function for pharmacy builders.
type Pharmacy func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// TimeSlot is the predicate function for timeslot builders.
type TimeSlot func(*sql.Selector)

// UserSession is the predicate function for usersession builders.
type UserSession func(*sql.Selector)

// Workshop is the predicate function for workshop builders.
type Workshop func(*sql.Selector)

// WorkshopEnrollment is the predicate function for workshopenrollment builders.
type WorkshopEnrollment func(*sql.Selector)
