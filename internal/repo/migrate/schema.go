// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "member_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "time_slot_id", Type: field.TypeUUID, Unique: true},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "visit_type", Type: field.TypeEnum, Enums: []string{"in_person", "video"}, Default: "in_person"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "confirmed", "in_progress", "completed", "cancelled", "no_show"}, Default: "scheduled"},
		{Name: "payment_status", Type: field.TypeEnum, Enums: []string{"unpaid", "partially_paid", "paid", "refunded"}, Default: "unpaid"},
		{Name: "paid_amount", Type: field.TypeInt64, Default: 0},
		{Name: "booking_code", Type: field.TypeString, Unique: true},
		{Name: "symptoms", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "consultation_fee", Type: field.TypeInt64},
		{Name: "covered_amount", Type: field.TypeInt64, Default: 0},
		{Name: "payable_amount", Type: field.TypeInt64},
		{Name: "insurance_provider", Type: field.TypeString, Nullable: true},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "cancellation_reason", Type: field.TypeString, Nullable: true},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_user_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[7]},
			},
			{
				Name:    "appointment_doctor_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[5], AppointmentsColumns[7]},
			},
			{
				Name:    "appointment_status_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[10], AppointmentsColumns[7]},
			},
		},
	}
	// BloodDonationsColumns holds the columns for the "blood_donations" table.
	BloodDonationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "donor_id", Type: field.TypeUUID},
		{Name: "request_id", Type: field.TypeUUID, Nullable: true},
		{Name: "blood_type", Type: field.TypeEnum, Enums: []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}},
		{Name: "units", Type: field.TypeInt, Default: 1},
		{Name: "donated_at", Type: field.TypeTime},
		{Name: "location", Type: field.TypeString, Default: ""},
	}
	// BloodDonationsTable holds the schema information for the "blood_donations" table.
	BloodDonationsTable = &schema.Table{
		Name:       "blood_donations",
		Columns:    BloodDonationsColumns,
		PrimaryKey: []*schema.Column{BloodDonationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "blooddonation_donor_id_donated_at",
				Unique:  false,
				Columns: []*schema.Column{BloodDonationsColumns[2], BloodDonationsColumns[6]},
			},
			{
				Name:    "blooddonation_request_id",
				Unique:  false,
				Columns: []*schema.Column{BloodDonationsColumns[3]},
			},
		},
	}
	// BloodRequestsColumns holds the columns for the "blood_requests" table.
	BloodRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "requester_id", Type: field.TypeUUID},
		{Name: "patient_name", Type: field.TypeString},
		{Name: "blood_type", Type: field.TypeEnum, Enums: []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}},
		{Name: "units_needed", Type: field.TypeInt, Default: 1},
		{Name: "units_fulfilled", Type: field.TypeInt, Default: 0},
		{Name: "hospital", Type: field.TypeString},
		{Name: "city", Type: field.TypeString},
		{Name: "urgency", Type: field.TypeEnum, Enums: []string{"routine", "urgent", "critical"}, Default: "routine"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "matched", "fulfilled", "cancelled"}, Default: "open"},
		{Name: "contact_phone", Type: field.TypeString},
		{Name: "needed_by", Type: field.TypeTime, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// BloodRequestsTable holds the schema information for the "blood_requests" table.
	BloodRequestsTable = &schema.Table{
		Name:       "blood_requests",
		Columns:    BloodRequestsColumns,
		PrimaryKey: []*schema.Column{BloodRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "bloodrequest_status_city_blood_type",
				Unique:  false,
				Columns: []*schema.Column{BloodRequestsColumns[11], BloodRequestsColumns[9], BloodRequestsColumns[5]},
			},
			{
				Name:    "bloodrequest_requester_id",
				Unique:  false,
				Columns: []*schema.Column{BloodRequestsColumns[3]},
			},
		},
	}
	// DoctorsColumns holds the columns for the "doctors" table.
	DoctorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID, Nullable: true},
		{Name: "full_name", Type: field.TypeString},
		{Name: "specialty", Type: field.TypeString},
		{Name: "hospital", Type: field.TypeString, Default: ""},
		{Name: "city", Type: field.TypeString, Default: ""},
		{Name: "consultation_fee", Type: field.TypeInt64},
		{Name: "accepted_insurers", Type: field.TypeJSON, Nullable: true},
		{Name: "rating", Type: field.TypeFloat64, Default: 0},
		{Name: "review_count", Type: field.TypeInt, Default: 0},
		{Name: "years_experience", Type: field.TypeInt, Default: 0},
		{Name: "bio", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "avatar_url", Type: field.TypeString, Nullable: true},
		{Name: "video_visits", Type: field.TypeBool, Default: false},
		{Name: "accepting_patients", Type: field.TypeBool, Default: true},
	}
	// DoctorsTable holds the schema information for the "doctors" table.
	DoctorsTable = &schema.Table{
		Name:       "doctors",
		Columns:    DoctorsColumns,
		PrimaryKey: []*schema.Column{DoctorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "doctor_specialty_city",
				Unique:  false,
				Columns: []*schema.Column{DoctorsColumns[6], DoctorsColumns[8]},
			},
			{
				Name:    "doctor_accepting_patients",
				Unique:  false,
				Columns: []*schema.Column{DoctorsColumns[17]},
			},
		},
	}
	// DonationsColumns holds the columns for the "donations" table.
	DonationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "initiative_id", Type: field.TypeUUID},
		{Name: "donor_id", Type: field.TypeUUID, Nullable: true},
		{Name: "amount", Type: field.TypeInt64},
		{Name: "anonymous", Type: field.TypeBool, Default: false},
		{Name: "message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "receipt_reference", Type: field.TypeString, Unique: true},
	}
	// DonationsTable holds the schema information for the "donations" table.
	DonationsTable = &schema.Table{
		Name:       "donations",
		Columns:    DonationsColumns,
		PrimaryKey: []*schema.Column{DonationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "donation_initiative_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DonationsColumns[2], DonationsColumns[1]},
			},
			{
				Name:    "donation_donor_id",
				Unique:  false,
				Columns: []*schema.Column{DonationsColumns[3]},
			},
		},
	}
	// DonationInitiativesColumns holds the columns for the "donation_initiatives" table.
	DonationInitiativesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "organizer_id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"medical_bills", "equipment", "research", "community"}, Default: "community"},
		{Name: "goal_amount", Type: field.TypeInt64},
		{Name: "raised_amount", Type: field.TypeInt64, Default: 0},
		{Name: "donor_count", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "completed", "cancelled"}, Default: "active"},
		{Name: "ends_at", Type: field.TypeTime, Nullable: true},
		{Name: "image_url", Type: field.TypeString, Nullable: true},
	}
	// DonationInitiativesTable holds the schema information for the "donation_initiatives" table.
	DonationInitiativesTable = &schema.Table{
		Name:       "donation_initiatives",
		Columns:    DonationInitiativesColumns,
		PrimaryKey: []*schema.Column{DonationInitiativesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "donationinitiative_status_category",
				Unique:  false,
				Columns: []*schema.Column{DonationInitiativesColumns[11], DonationInitiativesColumns[7]},
			},
			{
				Name:    "donationinitiative_organizer_id",
				Unique:  false,
				Columns: []*schema.Column{DonationInitiativesColumns[4]},
			},
		},
	}
	// EmergencyContactsColumns holds the columns for the "emergency_contacts" table.
	EmergencyContactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "full_name", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString},
		{Name: "relationship", Type: field.TypeString, Default: ""},
		{Name: "is_primary", Type: field.TypeBool, Default: false},
	}
	// EmergencyContactsTable holds the schema information for the "emergency_contacts" table.
	EmergencyContactsTable = &schema.Table{
		Name:       "emergency_contacts",
		Columns:    EmergencyContactsColumns,
		PrimaryKey: []*schema.Column{EmergencyContactsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "emergencycontact_user_id_is_primary",
				Unique:  false,
				Columns: []*schema.Column{EmergencyContactsColumns[3], EmergencyContactsColumns[7]},
			},
		},
	}
	// FamilyMembersColumns holds the columns for the "family_members" table.
	FamilyMembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "full_name", Type: field.TypeString},
		{Name: "relationship", Type: field.TypeEnum, Enums: []string{"self", "spouse", "child", "parent", "sibling", "other"}, Default: "other"},
		{Name: "date_of_birth", Type: field.TypeTime, Nullable: true},
		{Name: "gender", Type: field.TypeEnum, Nullable: true, Enums: []string{"male", "female", "other"}},
		{Name: "blood_type", Type: field.TypeEnum, Nullable: true, Enums: []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}},
		{Name: "allergies", Type: field.TypeJSON, Nullable: true},
		{Name: "conditions", Type: field.TypeJSON, Nullable: true},
		{Name: "insurance_provider", Type: field.TypeString, Nullable: true},
		{Name: "insurance_policy_encrypted", Type: field.TypeString, Nullable: true},
		{Name: "insurance_valid_until", Type: field.TypeTime, Nullable: true},
		{Name: "insurance_coverage_amount", Type: field.TypeInt64, Nullable: true},
		{Name: "device_name", Type: field.TypeString, Nullable: true},
		{Name: "device_connected", Type: field.TypeBool, Default: false},
		{Name: "device_last_synced_at", Type: field.TypeTime, Nullable: true},
	}
	// FamilyMembersTable holds the schema information for the "family_members" table.
	FamilyMembersTable = &schema.Table{
		Name:       "family_members",
		Columns:    FamilyMembersColumns,
		PrimaryKey: []*schema.Column{FamilyMembersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "familymember_user_id",
				Unique:  false,
				Columns: []*schema.Column{FamilyMembersColumns[4]},
			},
			{
				Name:    "familymember_user_id_relationship",
				Unique:  false,
				Columns: []*schema.Column{FamilyMembersColumns[4], FamilyMembersColumns[6]},
			},
		},
	}
	// HealthMetricsColumns holds the columns for the "health_metrics" table.
	HealthMetricsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "member_id", Type: field.TypeUUID},
		{Name: "metric_type", Type: field.TypeEnum, Enums: []string{"blood_pressure", "heart_rate", "weight", "blood_glucose", "temperature", "oxygen_saturation"}},
		{Name: "value", Type: field.TypeFloat64},
		{Name: "value_secondary", Type: field.TypeFloat64, Nullable: true},
		{Name: "unit", Type: field.TypeString},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "note", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// HealthMetricsTable holds the schema information for the "health_metrics" table.
	HealthMetricsTable = &schema.Table{
		Name:       "health_metrics",
		Columns:    HealthMetricsColumns,
		PrimaryKey: []*schema.Column{HealthMetricsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "healthmetric_member_id_metric_type_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{HealthMetricsColumns[3], HealthMetricsColumns[4], HealthMetricsColumns[8]},
			},
			{
				Name:    "healthmetric_user_id_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{HealthMetricsColumns[2], HealthMetricsColumns[8]},
			},
		},
	}
	// MedicationsColumns holds the columns for the "medications" table.
	MedicationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "member_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "dosage", Type: field.TypeString},
		{Name: "frequency", Type: field.TypeEnum, Enums: []string{"once_daily", "twice_daily", "three_times_daily", "weekly", "as_needed"}, Default: "once_daily"},
		{Name: "reminder_times", Type: field.TypeJSON, Nullable: true},
		{Name: "start_date", Type: field.TypeTime},
		{Name: "end_date", Type: field.TypeTime, Nullable: true},
		{Name: "instructions", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// MedicationsTable holds the schema information for the "medications" table.
	MedicationsTable = &schema.Table{
		Name:       "medications",
		Columns:    MedicationsColumns,
		PrimaryKey: []*schema.Column{MedicationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "medication_member_id_active",
				Unique:  false,
				Columns: []*schema.Column{MedicationsColumns[5], MedicationsColumns[13]},
			},
			{
				Name:    "medication_user_id",
				Unique:  false,
				Columns: []*schema.Column{MedicationsColumns[4]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"appointment", "medication", "blood", "donation", "workshop", "system"}, Default: "system"},
		{Name: "title", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_read_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[7], NotificationsColumns[1]},
			},
		},
	}
	// PharmaciesColumns holds the columns for the "pharmacies" table.
	PharmaciesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "address", Type: field.TypeString, Default: ""},
		{Name: "city", Type: field.TypeString, Default: ""},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "rating", Type: field.TypeFloat64, Default: 0},
		{Name: "distance_km", Type: field.TypeFloat64, Default: 0},
		{Name: "delivery_available", Type: field.TypeBool, Default: false},
		{Name: "delivery_minutes", Type: field.TypeInt, Default: 0},
		{Name: "insurer_networks", Type: field.TypeJSON, Nullable: true},
		{Name: "opens_at", Type: field.TypeString, Default: "08:00"},
		{Name: "closes_at", Type: field.TypeString, Default: "22:00"},
		{Name: "open_24h", Type: field.TypeBool, Default: false},
	}
	// PharmaciesTable holds the schema information for the "pharmacies" table.
	PharmaciesTable = &schema.Table{
		Name:       "pharmacies",
		Columns:    PharmaciesColumns,
		PrimaryKey: []*schema.Column{PharmaciesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pharmacy_city",
				Unique:  false,
				Columns: []*schema.Column{PharmaciesColumns[6]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "phone", Type: field.TypeString, Unique: true},
		{Name: "phone_verified", Type: field.TypeBool, Default: false},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "full_name", Type: field.TypeString, Default: ""},
		{Name: "date_of_birth", Type: field.TypeTime, Nullable: true},
		{Name: "gender", Type: field.TypeEnum, Nullable: true, Enums: []string{"male", "female", "other"}},
		{Name: "blood_type", Type: field.TypeEnum, Nullable: true, Enums: []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}},
		{Name: "insurance_provider", Type: field.TypeString, Nullable: true},
		{Name: "insurance_policy_encrypted", Type: field.TypeString, Nullable: true},
		{Name: "avatar_url", Type: field.TypeString, Nullable: true},
		{Name: "blood_donor", Type: field.TypeBool, Default: false},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_login_attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_failed_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "locked", "disabled"}, Default: "active"},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profile_phone",
				Unique:  true,
				Columns: []*schema.Column{ProfilesColumns[4]},
			},
			{
				Name:    "profile_blood_donor_city",
				Unique:  false,
				Columns: []*schema.Column{ProfilesColumns[15], ProfilesColumns[16]},
			},
		},
	}
	// TimeSlotsColumns holds the columns for the "time_slots" table.
	TimeSlotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"available", "booked", "blocked"}, Default: "available"},
	}
	// TimeSlotsTable holds the schema information for the "time_slots" table.
	TimeSlotsTable = &schema.Table{
		Name:       "time_slots",
		Columns:    TimeSlotsColumns,
		PrimaryKey: []*schema.Column{TimeSlotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "timeslot_doctor_id_start_time",
				Unique:  true,
				Columns: []*schema.Column{TimeSlotsColumns[3], TimeSlotsColumns[4]},
			},
			{
				Name:    "timeslot_doctor_id_status_start_time",
				Unique:  false,
				Columns: []*schema.Column{TimeSlotsColumns[3], TimeSlotsColumns[6], TimeSlotsColumns[4]},
			},
		},
	}
	// UserSessionsColumns holds the columns for the "user_sessions" table.
	UserSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "refresh_token_hash", Type: field.TypeString},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
	}
	// UserSessionsTable holds the schema information for the "user_sessions" table.
	UserSessionsTable = &schema.Table{
		Name:       "user_sessions",
		Columns:    UserSessionsColumns,
		PrimaryKey: []*schema.Column{UserSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usersession_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[3]},
			},
			{
				Name:    "usersession_session_id",
				Unique:  true,
				Columns: []*schema.Column{UserSessionsColumns[4]},
			},
		},
	}
	// WorkshopsColumns holds the columns for the "workshops" table.
	WorkshopsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "organizer_id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "topic", Type: field.TypeString, Default: ""},
		{Name: "starts_at", Type: field.TypeTime},
		{Name: "duration_minutes", Type: field.TypeInt, Default: 60},
		{Name: "capacity", Type: field.TypeInt},
		{Name: "enrolled_count", Type: field.TypeInt, Default: 0},
		{Name: "online", Type: field.TypeBool, Default: false},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "meeting_url", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "completed", "cancelled"}, Default: "scheduled"},
	}
	// WorkshopsTable holds the schema information for the "workshops" table.
	WorkshopsTable = &schema.Table{
		Name:       "workshops",
		Columns:    WorkshopsColumns,
		PrimaryKey: []*schema.Column{WorkshopsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workshop_status_starts_at",
				Unique:  false,
				Columns: []*schema.Column{WorkshopsColumns[15], WorkshopsColumns[8]},
			},
			{
				Name:    "workshop_organizer_id",
				Unique:  false,
				Columns: []*schema.Column{WorkshopsColumns[4]},
			},
		},
	}
	// WorkshopEnrollmentsColumns holds the columns for the "workshop_enrollments" table.
	WorkshopEnrollmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workshop_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"enrolled", "cancelled", "attended"}, Default: "enrolled"},
	}
	// WorkshopEnrollmentsTable holds the schema information for the "workshop_enrollments" table.
	WorkshopEnrollmentsTable = &schema.Table{
		Name:       "workshop_enrollments",
		Columns:    WorkshopEnrollmentsColumns,
		PrimaryKey: []*schema.Column{WorkshopEnrollmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workshopenrollment_workshop_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{WorkshopEnrollmentsColumns[3], WorkshopEnrollmentsColumns[4]},
			},
			{
				Name:    "workshopenrollment_user_id",
				Unique:  false,
				Columns: []*schema.Column{WorkshopEnrollmentsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		BloodDonationsTable,
		BloodRequestsTable,
		DoctorsTable,
		DonationsTable,
		DonationInitiativesTable,
		EmergencyContactsTable,
		FamilyMembersTable,
		HealthMetricsTable,
		MedicationsTable,
		NotificationsTable,
		PharmaciesTable,
		ProfilesTable,
		TimeSlotsTable,
		UserSessionsTable,
		WorkshopsTable,
		WorkshopEnrollmentsTable,
	}
)

func init() {
}
