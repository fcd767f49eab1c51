package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"petspace/domain"
	"petspace/notify"
	"petspace/services"
)

// menu drives the console demo. It is glue only: every decision about
// quotas, policies, membership or history access belongs to the service
// and the domain beneath it.
type menu struct {
	svc      *services.ChatService
	notifier *notify.Notifier
	in       *bufio.Scanner
	out      io.Writer
	current  string // name of the active user, empty until one is selected
}

func newMenu(svc *services.ChatService, notifier *notify.Notifier, in io.Reader, out io.Writer) *menu {
	return &menu{
		svc:      svc,
		notifier: notifier,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

func (m *menu) Run() {
	for {
		m.header("PetSpace Main Menu")
		fmt.Fprintln(m.out, "1. User management")
		fmt.Fprintln(m.out, "2. Room management")
		fmt.Fprintln(m.out, "3. Send a message")
		fmt.Fprintln(m.out, "4. Admin features")
		fmt.Fprintln(m.out, "5. Command queue demo")
		fmt.Fprintln(m.out, "6. Settings")
		fmt.Fprintln(m.out, "7. System status")
		fmt.Fprintln(m.out, "0. Exit")

		switch m.prompt("Choice") {
		case "1":
			m.userMenu()
		case "2":
			m.roomMenu()
		case "3":
			m.sendMessage()
		case "4":
			m.adminMenu()
		case "5":
			m.queueMenu()
		case "6":
			m.settingsMenu()
		case "7":
			m.statusView()
		case "0", "":
			fmt.Fprintln(m.out, "Goodbye!")
			return
		}
	}
}

func (m *menu) userMenu() {
	for {
		m.header("User Management")
		fmt.Fprintln(m.out, "1. Register user")
		fmt.Fprintln(m.out, "2. Switch active user")
		fmt.Fprintln(m.out, "3. List users")
		fmt.Fprintln(m.out, "4. Describe active user")
		fmt.Fprintln(m.out, "5. Delete user")
		fmt.Fprintln(m.out, "0. Back")

		switch m.prompt("Choice") {
		case "1":
			name := m.prompt("Name")
			tier := m.prompt("Tier (free/premium/admin)")
			if _, err := m.svc.RegisterUser(services.RegisterRequest{Name: name, Tier: tier}); err != nil {
				fmt.Fprintf(m.out, "Registration failed: %v\n", err)
				continue
			}
			m.current = name
			fmt.Fprintf(m.out, "Registered %s, now the active user.\n", name)
		case "2":
			name := m.prompt("Name")
			if _, ok := m.svc.User(name); !ok {
				fmt.Fprintf(m.out, "No such user: %s\n", name)
				continue
			}
			m.current = name
			fmt.Fprintf(m.out, "Active user is now %s.\n", name)
		case "3":
			m.usersView()
		case "4":
			user, ok := m.activeUser()
			if !ok {
				continue
			}
			fmt.Fprint(m.out, user.Describe())
		case "5":
			name := m.prompt("Name")
			if !m.svc.DeleteUser(name) {
				fmt.Fprintf(m.out, "No such user: %s\n", name)
				continue
			}
			if m.current == name {
				m.current = ""
			}
			fmt.Fprintf(m.out, "Deleted %s.\n", name)
		case "0", "":
			return
		}
	}
}

func (m *menu) roomMenu() {
	for {
		m.header("Room Management")
		fmt.Fprintln(m.out, "1. Join room")
		fmt.Fprintln(m.out, "2. Leave room")
		fmt.Fprintln(m.out, "3. List rooms")
		fmt.Fprintln(m.out, "4. Create room")
		fmt.Fprintln(m.out, "0. Back")

		switch m.prompt("Choice") {
		case "1":
			if _, ok := m.activeUser(); !ok {
				continue
			}
			m.svc.JoinRoom(m.current, m.prompt("Room"))
		case "2":
			if _, ok := m.activeUser(); !ok {
				continue
			}
			m.svc.LeaveRoom(m.current, m.prompt("Room"))
		case "3":
			m.roomsView()
		case "4":
			m.svc.CreateRoom(m.prompt("Room name"))
		case "0", "":
			return
		}
	}
}

func (m *menu) sendMessage() {
	if _, ok := m.activeUser(); !ok {
		return
	}
	room := m.prompt("Room")
	message := m.prompt("Message")
	if m.svc.Post(m.current, room, message) {
		fmt.Fprintln(m.out, "Message sent.")
	} else {
		fmt.Fprintln(m.out, "Message was not sent.")
	}
}

func (m *menu) adminMenu() {
	for {
		m.header("Admin Features")
		fmt.Fprintln(m.out, "1. Browse chat history")
		fmt.Fprintln(m.out, "2. Manual cursor walk")
		fmt.Fprintln(m.out, "3. Reset a user's daily count")
		fmt.Fprintln(m.out, "0. Back")

		switch m.prompt("Choice") {
		case "1":
			if _, ok := m.activeUser(); !ok {
				continue
			}
			m.svc.BrowseHistory(m.current, m.prompt("Room"))
		case "2":
			m.cursorWalk()
		case "3":
			user, ok := m.svc.User(m.prompt("User"))
			if !ok {
				fmt.Fprintln(m.out, "No such user.")
				continue
			}
			user.ResetDailyCount()
			fmt.Fprintln(m.out, "Daily count reset.")
		case "0", "":
			return
		}
	}
}

// cursorWalk steps through the history one entry at a time, showing the
// cursor operations the admin view is built on.
func (m *menu) cursorWalk() {
	user, ok := m.activeUser()
	if !ok {
		return
	}
	room, foundRoom := m.svc.Room(m.prompt("Room"))
	if !foundRoom {
		fmt.Fprintln(m.out, "No such room.")
		return
	}
	cursor, granted := user.RequestHistoryIterator(room)
	if !granted {
		return
	}
	cursor.First()
	for {
		if cursor.IsDone() {
			fmt.Fprintln(m.out, "<end of history>")
			return
		}
		fmt.Fprintf(m.out, "-> %s\n", cursor.CurrentItem())
		if strings.EqualFold(m.prompt("next/quit"), "quit") {
			return
		}
		cursor.Next()
	}
}

func (m *menu) queueMenu() {
	for {
		m.header("Command Queue Demo")
		fmt.Fprintln(m.out, "1. Queue a message (deliver + record)")
		fmt.Fprintln(m.out, "2. Execute queued actions")
		fmt.Fprintln(m.out, "0. Back")

		switch m.prompt("Choice") {
		case "1":
			if _, ok := m.activeUser(); !ok {
				continue
			}
			room := m.prompt("Room")
			message := m.prompt("Message")
			if m.svc.QueueMessage(m.current, room, message) {
				fmt.Fprintln(m.out, "Queued.")
			}
		case "2":
			if _, ok := m.activeUser(); !ok {
				continue
			}
			m.svc.FlushQueue(m.current)
			fmt.Fprintln(m.out, "Queue executed.")
		case "0", "":
			return
		}
	}
}

func (m *menu) settingsMenu() {
	m.header("Settings")
	fmt.Fprintf(m.out, "Current verbosity: %s\n", m.notifier.Level())
	fmt.Fprintln(m.out, "1. SILENT")
	fmt.Fprintln(m.out, "2. USER_ONLY")
	fmt.Fprintln(m.out, "3. BASIC")
	fmt.Fprintln(m.out, "4. DEBUG")

	switch m.prompt("Choice") {
	case "1":
		m.notifier.SetLevel(notify.Silent)
	case "2":
		m.notifier.SetLevel(notify.UserOnly)
	case "3":
		m.notifier.SetLevel(notify.Basic)
	case "4":
		m.notifier.SetLevel(notify.Debug)
	}
}

func (m *menu) activeUser() (*domain.User, bool) {
	if m.current == "" {
		fmt.Fprintln(m.out, "Select or register a user first.")
		return nil, false
	}
	u, found := m.svc.User(m.current)
	if !found {
		fmt.Fprintln(m.out, "Active user no longer exists.")
		m.current = ""
		return nil, false
	}
	return u, true
}

func (m *menu) prompt(label string) string {
	fmt.Fprintf(m.out, "%s> ", label)
	if !m.in.Scan() {
		return ""
	}
	return strings.TrimSpace(m.in.Text())
}

func (m *menu) header(title string) {
	line := fmt.Sprintf("  ====== %s ======", title)
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, color.New(color.BgBlack, color.FgGreen).Render(line))
}
