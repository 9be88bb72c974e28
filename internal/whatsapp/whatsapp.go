// Package whatsapp formats order and receipt messages for the business
// WhatsApp channel and builds the wa.me deep links that carry them.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"digital-cards/internal/model"
	"digital-cards/internal/receipt"
)

type Service struct {
	businessNumber string
}

func NewService(businessNumber string) *Service {
	return &Service{businessNumber: businessNumber}
}

// ShareURL wraps a message in a wa.me link addressed to the business number.
func (s *Service) ShareURL(message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.businessNumber, url.QueryEscape(message))
}

// ReceiptMessage is the payment-confirmation text a customer forwards after a
// successful checkout.
func (s *Service) ReceiptMessage(r *receipt.Receipt) string {
	var b strings.Builder
	b.WriteString("*Payment Confirmation - Smart Africa*\n\n")
	b.WriteString("Hello Smart Africa Team!\n\n")
	b.WriteString("I've just completed my payment for digital business cards. Here are my order details:\n\n")

	b.WriteString("*Order Details:*\n")
	fmt.Fprintf(&b, "- Reference: %s\n", r.Reference)
	fmt.Fprintf(&b, "- Plan: %s\n", r.PlanName)
	fmt.Fprintf(&b, "- Card Type: %s\n", r.CardType)
	fmt.Fprintf(&b, "- Quantity: %d\n", r.Quantity)
	fmt.Fprintf(&b, "- Amount Paid: GHS %.2f\n", r.AmountMajor())

	b.WriteString("\n*Customer Information:*\n")
	fmt.Fprintf(&b, "- Name: %s\n", r.CustomerName)
	fmt.Fprintf(&b, "- Email: %s\n", r.Email)
	fmt.Fprintf(&b, "- Phone: %s\n", r.Phone)
	if r.Company != "" {
		fmt.Fprintf(&b, "- Company: %s\n", r.Company)
	}

	b.WriteString("\nPlease confirm receipt of this payment and let me know the next steps for my digital business cards.\n")
	return b.String()
}

// OrderMessage announces a new order request before payment.
func (s *Service) OrderMessage(order *model.Order, note string) string {
	var b strings.Builder
	b.WriteString("*New Order - Smart Africa Digital Cards*\n\n")
	b.WriteString("*Customer Information:*\n")
	fmt.Fprintf(&b, "- Name: %s\n", order.CustomerName)
	fmt.Fprintf(&b, "- Email: %s\n", order.Email)
	fmt.Fprintf(&b, "- Phone: %s\n", order.CustomerPhone)
	if order.CustomerCompany != "" {
		fmt.Fprintf(&b, "- Company: %s\n", order.CustomerCompany)
	}

	b.WriteString("\n*Order Details:*\n")
	fmt.Fprintf(&b, "- Plan: %s\n", order.Plan)
	fmt.Fprintf(&b, "- Quantity: %d\n", order.Quantity)
	fmt.Fprintf(&b, "- Amount: GHS %.2f\n", float64(order.Amount)/100)

	if note == "" {
		note = "New order request from website"
	}
	fmt.Fprintf(&b, "\n*Customer Message:*\n%s\n", note)
	return b.String()
}

// SupportMessage formats a support request from an existing customer.
func (s *Service) SupportMessage(name, email, phone, message string) string {
	var b strings.Builder
	b.WriteString("*Support Request - Smart Africa*\n\n")
	b.WriteString("*Customer Information:*\n")
	fmt.Fprintf(&b, "- Name: %s\n", name)
	fmt.Fprintf(&b, "- Email: %s\n", email)
	fmt.Fprintf(&b, "- Phone: %s\n", phone)
	fmt.Fprintf(&b, "\n*Support Request:*\n%s\n", message)
	return b.String()
}
