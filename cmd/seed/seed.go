package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"services-marketplace-server/utils"
)

type demoUser struct {
	FirstName, Lastname, Mail, Address string
	Phone                              int64
	RutDigit                           string
	RutNumber, Age                     int
	Rating                             float32
	Main, Password                     string
}

var (
	workerUser = demoUser{
		FirstName: "Camila", Lastname: "Soto", Mail: "camila@demo.cl", Address: "Av. Matta 120",
		Phone: 56911111111, RutDigit: "5", RutNumber: 15111222, Age: 34, Rating: 4.8,
		Main: "camila", Password: "demo-worker",
	}
	petitionerUser = demoUser{
		FirstName: "Jorge", Lastname: "Pinto", Mail: "jorge@demo.cl", Address: "Los Leones 45",
		Phone: 56922222222, RutDigit: "K", RutNumber: 16333444, Age: 51, Rating: 4.1,
		Main: "jorge", Password: "demo-petitioner",
	}
)

// insert runs an INSERT ... RETURNING id and hands back the new id.
func insert(ctx context.Context, tx *sql.Tx, query string, args ...any) (int64, error) {
	var id int64
	if err := tx.QueryRowContext(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func insertUser(ctx context.Context, tx *sql.Tx, u demoUser) (int64, error) {
	userID, err := insert(ctx, tx,
		`INSERT INTO users (first_name, lastname, mail, phone_number, address, digit_number_rut, rut_numbers, age, rating)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.FirstName, u.Lastname, u.Mail, u.Phone, u.Address, u.RutDigit, u.RutNumber, u.Age, u.Rating)
	if err != nil {
		return 0, fmt.Errorf("user %s: %w", u.Mail, err)
	}

	hash, err := utils.HashPassword(u.Password)
	if err != nil {
		return 0, err
	}
	if _, err := insert(ctx, tx, `INSERT INTO user_login (main, pass_hash, id_user) VALUES ($1, $2, $3)`,
		u.Main, hash, userID); err != nil {
		return 0, fmt.Errorf("login %s: %w", u.Main, err)
	}
	return userID, nil
}

func seed(ctx context.Context, tx *sql.Tx) error {
	day := func(offset int) time.Time {
		return time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, offset)
	}

	workerUserID, err := insertUser(ctx, tx, workerUser)
	if err != nil {
		return err
	}
	petitionerUserID, err := insertUser(ctx, tx, petitionerUser)
	if err != nil {
		return err
	}

	workerID, err := insert(ctx, tx, `INSERT INTO worker (id_user) VALUES ($1)`, workerUserID)
	if err != nil {
		return fmt.Errorf("worker: %w", err)
	}
	petitionerID, err := insert(ctx, tx, `INSERT INTO petitioner (id_user) VALUES ($1)`, petitionerUserID)
	if err != nil {
		return fmt.Errorf("petitioner: %w", err)
	}

	serviceID, err := insert(ctx, tx,
		`INSERT INTO services (id_worker, content, init_date, finish_date, price) VALUES ($1, $2, $3, $4, $5)`,
		workerID, "Gasfitería a domicilio: fugas, llaves y calefont.", day(0), day(30), 25000)
	if err != nil {
		return fmt.Errorf("service: %w", err)
	}
	psID, err := insert(ctx, tx,
		`INSERT INTO petitioner_services (id_services, id_petitioner, petition_date, solved) VALUES ($1, $2, $3, $4)`,
		serviceID, petitionerID, day(1), true)
	if err != nil {
		return fmt.Errorf("petitioner service: %w", err)
	}
	if _, err := insert(ctx, tx,
		`INSERT INTO evaluation_petitioner (id_petitioner_services, content, rating) VALUES ($1, $2, $3)`,
		psID, "Cliente puntual y claro con el problema.", 5); err != nil {
		return fmt.Errorf("petitioner evaluation: %w", err)
	}
	if _, err := insert(ctx, tx,
		`INSERT INTO evaluation_worker (id_petitioner_services, content, rating) VALUES ($1, $2, $3)`,
		psID, "Arregló la fuga en una hora.", 4); err != nil {
		return fmt.Errorf("worker evaluation: %w", err)
	}

	requestID, err := insert(ctx, tx,
		`INSERT INTO request (id_petitioner, init_date, finish_date, price) VALUES ($1, $2, $3, $4)`,
		petitionerID, day(2), nil, 40000)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	wrID, err := insert(ctx, tx,
		`INSERT INTO worker_request (id_worker, id_request, petition_date, solved) VALUES ($1, $2, $3, $4)`,
		workerID, requestID, day(3), false)
	if err != nil {
		return fmt.Errorf("worker request: %w", err)
	}
	if _, err := insert(ctx, tx,
		`INSERT INTO petitioner_review (id_worker_request, content, rating) VALUES ($1, $2, $3)`,
		wrID, "Respondió rápido a la solicitud.", 5); err != nil {
		return fmt.Errorf("petitioner review: %w", err)
	}
	if _, err := insert(ctx, tx,
		`INSERT INTO worker_review (id_worker_request, content, rating) VALUES ($1, $2, $3)`,
		wrID, "Solicitud bien descrita.", 4); err != nil {
		return fmt.Errorf("worker review: %w", err)
	}

	log.Printf("✅ Seeded users %d and %d, service %d, request %d", workerUserID, petitionerUserID, serviceID, requestID)
	return nil
}
