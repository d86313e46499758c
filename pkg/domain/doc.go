// Package domain contains the business entities of the platform: users and
// their referral relations, deposits and the commission payouts they trigger.
// The types carry no infrastructure concerns so every layer can share them.
package domain
