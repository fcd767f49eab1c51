package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"petspace/domain"
	"petspace/internal"
)

func (m *menu) usersView() {
	table := newTable(m)
	table.SetHeader([]string{"Name", "Tier", "Rooms", "Quota", "Inbox"})
	for _, user := range m.svc.Users() {
		quota := "-"
		if user.Tier() == domain.TierFree {
			quota = fmt.Sprintf("%d/%d", user.DailySent(), user.DailyLimit())
		}
		table.Append([]string{
			user.Name(),
			user.Tier().String(),
			strings.Join(user.RoomNames(), ", "),
			quota,
			strconv.Itoa(len(user.Inbox())),
		})
	}
	table.Render()
}

func (m *menu) roomsView() {
	table := newTable(m)
	table.SetHeader([]string{"Room", "Members", "History"})
	for _, room := range m.svc.Rooms() {
		table.Append([]string{
			room.Name(),
			strings.Join(room.MemberNames(), ", "),
			strconv.Itoa(room.HistorySize()),
		})
	}
	table.Render()
}

func (m *menu) statusView() {
	status, err := internal.Snapshot()
	if err != nil {
		fmt.Fprintf(m.out, "Status unavailable: %v\n", err)
		return
	}
	table := newTable(m)
	table.SetHeader([]string{"PID", "State", "CPU %", "RAM %", "Uptime", "Users", "Rooms"})
	table.Append([]string{
		strconv.Itoa(int(status.PID)),
		status.State,
		fmt.Sprintf("%.2f", status.CPUPercent),
		fmt.Sprintf("%.2f", status.MemoryPercent),
		status.Uptime.Round(time.Second).String(),
		strconv.Itoa(len(m.svc.Users())),
		strconv.Itoa(len(m.svc.Rooms())),
	})
	table.Render()
}

func newTable(m *menu) *tablewriter.Table {
	table := tablewriter.NewWriter(m.out)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
