// Package email derives the outgoing-mail identities from resolved settings:
// the sender, the ordered recipient list, and an addressed message skeleton.
// Nothing in this package sends mail.
package email
