package email

import (
	"fmt"
	"strings"
)

// Templates for transactional mail. Kept as plain string builders so the
// service layer does not need html/template plumbing for short notices.

// AppointmentConfirmation builds the booking confirmation message.
func AppointmentConfirmation(to, patientName, doctorName, specialty, date, timeRange, bookingCode string) Message {
	subject := fmt.Sprintf("Appointment confirmed: %s on %s", doctorName, date)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Hi %s,\n\n", patientName))
	sb.WriteString(fmt.Sprintf("Your appointment with %s (%s) is confirmed.\n\n", doctorName, specialty))
	sb.WriteString(fmt.Sprintf("Date: %s\nTime: %s\nBooking code: %s\n\n", date, timeRange, bookingCode))
	sb.WriteString("If you need to cancel or reschedule, please do so at least 24 hours in advance.\n")

	return Message{
		To:       []string{to},
		Subject:  subject,
		TextBody: sb.String(),
	}
}

// AppointmentCancellation builds the cancellation notice.
func AppointmentCancellation(to, patientName, doctorName, date string) Message {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Hi %s,\n\n", patientName))
	sb.WriteString(fmt.Sprintf("Your appointment with %s on %s has been cancelled.\n", doctorName, date))
	sb.WriteString("The time slot has been released.\n")

	return Message{
		To:       []string{to},
		Subject:  fmt.Sprintf("Appointment cancelled: %s", date),
		TextBody: sb.String(),
	}
}

// DonationReceipt builds the donation receipt message.
func DonationReceipt(to, donorName, initiativeTitle, amount, reference string) Message {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Hi %s,\n\n", donorName))
	sb.WriteString(fmt.Sprintf("Thank you for your donation of %s to %q.\n\n", amount, initiativeTitle))
	sb.WriteString(fmt.Sprintf("Receipt reference: %s\n", reference))
	sb.WriteString("Keep this reference for your records.\n")

	return Message{
		To:       []string{to},
		Subject:  "Your donation receipt",
		TextBody: sb.String(),
	}
}

// BloodRequestMatch notifies a donor about a compatible blood request.
func BloodRequestMatch(to, donorName, bloodType, hospital, urgency string) Message {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Hi %s,\n\n", donorName))
	sb.WriteString(fmt.Sprintf("A patient at %s needs %s blood (urgency: %s), and your blood type is compatible.\n\n", hospital, bloodType, urgency))
	sb.WriteString("Open the app to respond if you are able to donate.\n")

	return Message{
		To:       []string{to},
		Subject:  fmt.Sprintf("Compatible blood request: %s needed", bloodType),
		TextBody: sb.String(),
	}
}
