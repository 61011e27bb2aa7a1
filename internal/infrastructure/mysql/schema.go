package mysql

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema lists the storefront tables in creation order.
var Schema = []struct {
	Name  string
	Query string
}{
	{"Admins", `
	CREATE TABLE IF NOT EXISTS Admins (
		id CHAR(36) NOT NULL PRIMARY KEY,
		email VARCHAR(191) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		name VARCHAR(100) NOT NULL DEFAULT '',
		createdAt DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3)
	)`},
	{"Product", `
	CREATE TABLE IF NOT EXISTS Product (
		id CHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		slug VARCHAR(191) NOT NULL UNIQUE,
		description TEXT NOT NULL,
		price BIGINT NOT NULL,
		comparePrice BIGINT NULL,
		images JSON NOT NULL,
		embroidery TEXT NULL,
		fabric TEXT NULL,
		craftsmanship TEXT NULL,
		careInstructions TEXT NULL,
		deliveryDays INT NOT NULL DEFAULT 7,
		sizeChart TEXT NULL,
		inStock TINYINT(1) NOT NULL DEFAULT 1,
		stockQuantity INT NOT NULL DEFAULT 0,
		createdAt DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		updatedAt DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
		INDEX idx_in_stock (inStock)
	)`},
	{"Orders", `
	CREATE TABLE IF NOT EXISTS Orders (
		id CHAR(36) NOT NULL PRIMARY KEY,
		orderCode VARCHAR(32) NOT NULL UNIQUE,
		status VARCHAR(20) NOT NULL DEFAULT 'Pending',
		fullName VARCHAR(150) NOT NULL,
		phone VARCHAR(30) NOT NULL,
		whatsapp VARCHAR(30) NULL,
		address VARCHAR(500) NOT NULL,
		city VARCHAR(100) NOT NULL,
		state VARCHAR(100) NOT NULL,
		pincode VARCHAR(12) NOT NULL,
		notes TEXT NULL,
		total BIGINT NOT NULL,
		createdAt DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		INDEX idx_status (status),
		INDEX idx_created (createdAt)
	)`},
	{"OrderItems", `
	CREATE TABLE IF NOT EXISTS OrderItems (
		id CHAR(36) NOT NULL PRIMARY KEY,
		orderId CHAR(36) NOT NULL,
		productId VARCHAR(64) NOT NULL,
		size VARCHAR(8) NOT NULL,
		quantity INT NOT NULL,
		price BIGINT NOT NULL,
		FOREIGN KEY (orderId) REFERENCES Orders(id) ON DELETE CASCADE,
		INDEX idx_order (orderId),
		INDEX idx_product (productId)
	)`},
	{"Reviews", `
	CREATE TABLE IF NOT EXISTS Reviews (
		id CHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(150) NOT NULL,
		rating TINYINT NOT NULL,
		text TEXT NOT NULL,
		approved TINYINT(1) NOT NULL DEFAULT 0,
		createdAt DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		INDEX idx_approved (approved)
	)`},
	{"SiteContent", `
	CREATE TABLE IF NOT EXISTS SiteContent (
		contentKey VARCHAR(100) NOT NULL PRIMARY KEY,
		content TEXT NOT NULL,
		updatedAt DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3)
	)`},
	{"ContactSubmission", `
	CREATE TABLE IF NOT EXISTS ContactSubmission (
		id CHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(150) NOT NULL,
		email VARCHAR(191) NOT NULL,
		phone VARCHAR(30) NULL,
		message TEXT NOT NULL,
		createdAt DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		INDEX idx_created (createdAt)
	)`},
}

func Migrate(ctx context.Context, db *sql.DB) error {
	for _, tbl := range Schema {
		if _, err := db.ExecContext(ctx, tbl.Query); err != nil {
			return fmt.Errorf("creating table %s: %w", tbl.Name, err)
		}
	}
	return nil
}
