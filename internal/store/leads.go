// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
)

// Lead tables are append-only from the public site. Status transitions happen
// out of band in back-office tooling, so no update queries live here.

const createContactSubmission = `
INSERT INTO contact_submissions (id, site, name, email, phone, message, type, subject, status)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

// CreateContactSubmissionParams holds parameters for CreateContactSubmission.
type CreateContactSubmissionParams struct {
	ID      string
	Site    string
	Name    string
	Email   string
	Phone   string
	Message string
	Type    string
	Subject string
}

// CreateContactSubmission inserts a contact or get-involved lead.
func (q *Queries) CreateContactSubmission(ctx context.Context, arg CreateContactSubmissionParams) error {
	_, err := q.db.ExecContext(ctx, createContactSubmission,
		arg.ID, arg.Site, arg.Name, arg.Email, arg.Phone,
		arg.Message, arg.Type, arg.Subject, LeadStatusNew)
	return err
}

const getContactSubmissionByID = `
SELECT id, site, name, email, phone, message, type, subject, status, created_at
FROM contact_submissions
WHERE id = ?`

// GetContactSubmissionByID returns one contact submission.
func (q *Queries) GetContactSubmissionByID(ctx context.Context, id string) (ContactSubmission, error) {
	row := q.db.QueryRowContext(ctx, getContactSubmissionByID, id)
	var s ContactSubmission
	err := row.Scan(&s.ID, &s.Site, &s.Name, &s.Email, &s.Phone,
		&s.Message, &s.Type, &s.Subject, &s.Status, &s.CreatedAt)
	return s, err
}

const createVolunteerApplication = `
INSERT INTO volunteer_applications (id, site, name, email, phone, skills, availability, message, status)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

// CreateVolunteerApplicationParams holds parameters for CreateVolunteerApplication.
type CreateVolunteerApplicationParams struct {
	ID           string
	Site         string
	Name         string
	Email        string
	Phone        string
	Skills       string
	Availability string
	Message      string
}

// CreateVolunteerApplication inserts a volunteer lead.
func (q *Queries) CreateVolunteerApplication(ctx context.Context, arg CreateVolunteerApplicationParams) error {
	_, err := q.db.ExecContext(ctx, createVolunteerApplication,
		arg.ID, arg.Site, arg.Name, arg.Email, arg.Phone,
		arg.Skills, arg.Availability, arg.Message, LeadStatusNew)
	return err
}

const getVolunteerApplicationByID = `
SELECT id, site, name, email, phone, skills, availability, message, status, created_at
FROM volunteer_applications
WHERE id = ?`

// GetVolunteerApplicationByID returns one volunteer application.
func (q *Queries) GetVolunteerApplicationByID(ctx context.Context, id string) (VolunteerApplication, error) {
	row := q.db.QueryRowContext(ctx, getVolunteerApplicationByID, id)
	var v VolunteerApplication
	err := row.Scan(&v.ID, &v.Site, &v.Name, &v.Email, &v.Phone,
		&v.Skills, &v.Availability, &v.Message, &v.Status, &v.CreatedAt)
	return v, err
}

const createDonation = `
INSERT INTO donations (id, site, donor_name, donor_email, donor_phone, amount, currency, payment_status, notes)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

// CreateDonationParams holds parameters for CreateDonation.
type CreateDonationParams struct {
	ID         string
	Site       string
	DonorName  string
	DonorEmail string
	DonorPhone string
	Amount     float64
	Currency   string
	Notes      string
}

// CreateDonation inserts a pending donation pledge. The amount must already
// be validated as strictly positive by the caller.
func (q *Queries) CreateDonation(ctx context.Context, arg CreateDonationParams) error {
	_, err := q.db.ExecContext(ctx, createDonation,
		arg.ID, arg.Site, arg.DonorName, arg.DonorEmail, arg.DonorPhone,
		arg.Amount, arg.Currency, PaymentStatusPending, arg.Notes)
	return err
}

const getDonationByID = `
SELECT id, site, donor_name, donor_email, donor_phone, amount, currency, payment_status, notes, created_at
FROM donations
WHERE id = ?`

// GetDonationByID returns one donation pledge.
func (q *Queries) GetDonationByID(ctx context.Context, id string) (Donation, error) {
	row := q.db.QueryRowContext(ctx, getDonationByID, id)
	var d Donation
	err := row.Scan(&d.ID, &d.Site, &d.DonorName, &d.DonorEmail, &d.DonorPhone,
		&d.Amount, &d.Currency, &d.PaymentStatus, &d.Notes, &d.CreatedAt)
	return d, err
}

const countDonations = `
SELECT COUNT(*) FROM donations WHERE site = ?`

// CountDonations returns the number of donation rows for a site.
func (q *Queries) CountDonations(ctx context.Context, site string) (int64, error) {
	row := q.db.QueryRowContext(ctx, countDonations, site)
	var n int64
	err := row.Scan(&n)
	return n, err
}
