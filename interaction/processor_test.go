package interaction_test

import (
	"atlas-sorter/catalog"
	"atlas-sorter/container"
	"atlas-sorter/interaction"
	"atlas-sorter/item"
	"atlas-sorter/kafka/message"
	message2 "atlas-sorter/kafka/message/container"
	message3 "atlas-sorter/kafka/message/interaction"
	"atlas-sorter/permission"
	"atlas-sorter/slot"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDatabase(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	var migrators []func(db *gorm.DB) error
	migrators = append(migrators, container.Migration, slot.Migration, permission.Migration)

	for _, migrator := range migrators {
		if err := migrator(db); err != nil {
			t.Fatalf("Failed to migrate database: %v", err)
		}
	}
	return db
}

func testLogger() logrus.FieldLogger {
	l, _ := test.NewNullLogger()
	return l
}

var actorId = uuid.MustParse("5f2b1f4e-6d3c-4a8e-9b7a-2c1d0e9f8a7b")

func middleClick(rawSlot int32) *interaction.EventBuilder {
	return interaction.NewEventBuilder(uuid.New(), actorId).
		SetActorKind(interaction.ActorKindPlayer).
		SetClick(interaction.ClickMiddle).
		SetSlotType(interaction.SlotTypeContainer).
		SetAction(interaction.ActionNothing).
		SetRawSlot(rawSlot)
}

func testCatalog(t *testing.T) catalog.Model {
	c, err := catalog.Parse([]byte("default_max_stack: 64\nitems:\n  - {name: STONE, max_stack: 16}\n  - {name: DIAMOND_SWORD, max_stack: 1}\n"))
	if err != nil {
		t.Fatalf("Failed to parse catalog: %v", err)
	}
	return c
}

type fixture struct {
	db     *gorm.DB
	cp     *container.Processor
	p      *interaction.Processor
	chest  container.Model
	player container.Model
	view   interaction.View
}

func chestSlots() []item.Model {
	slots := make([]item.Model, 27)
	slots[3] = item.NewBuilder("STONE", 12).Build()
	slots[8] = item.NewBuilder("DIRT", 12).Build()
	slots[20] = item.NewBuilder("STONE", 10).Build()
	return slots
}

func playerSlots() []item.Model {
	slots := make([]item.Model, 41)
	slots[2] = item.NewBuilder("DIAMOND_SWORD", 1).Build()
	slots[12] = item.NewBuilder("OAK_LOG", 10).Build()
	slots[30] = item.NewBuilder("COBBLESTONE", 3).Build()
	return slots
}

func newFixture(t *testing.T) fixture {
	db := testDatabase(t)
	l := testLogger()
	cp := container.NewProcessor(l, context.Background(), db).WithCatalog(testCatalog(t))
	mb := message.NewBuffer()

	mk := func(kind container.Kind, slots []item.Model) container.Model {
		c, err := cp.Create(mb)(kind, uint32(len(slots)))
		if err != nil {
			t.Fatalf("Failed to create container: %v", err)
		}
		if err = cp.SetContents(mb)(c.Id(), slots); err != nil {
			t.Fatalf("Failed to set contents: %v", err)
		}
		return c
	}
	chest := mk(container.KindGeneric, chestSlots())
	player := mk(container.KindPlayer, playerSlots())
	return fixture{
		db:     db,
		cp:     cp,
		p:      interaction.NewProcessor(l, context.Background(), db).WithContainerProcessor(cp),
		chest:  chest,
		player: player,
		view:   interaction.View{Top: chest.Id(), Bottom: player.Id()},
	}
}

func (f fixture) contents(t *testing.T, id uuid.UUID) []item.Model {
	c, err := f.cp.GetById(id)
	if err != nil {
		t.Fatalf("Failed to get container: %v", err)
	}
	return c.Slots()
}

func assertUnchanged(t *testing.T, got []item.Model, expected []item.Model) {
	t.Helper()
	for i := range expected {
		if !got[i].Equals(expected[i]) {
			t.Fatalf("slot %d changed from [%s] to [%s]", i, expected[i], got[i])
		}
	}
}

func TestTrySortTopContainer(t *testing.T) {
	f := newFixture(t)
	e := middleClick(5).Build()
	mb := message.NewBuffer()

	handled, err := f.p.TrySort(mb)(e, f.view)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !handled || !e.Cancelled() {
		t.Fatalf("expected handled and cancelled event, got [%t] [%t]", handled, e.Cancelled())
	}

	out := f.contents(t, f.chest.Id())
	if out[0].Type() != "DIRT" || out[0].Quantity() != 12 {
		t.Fatalf("expected 12 DIRT in slot 0, got [%s]", out[0])
	}
	if out[1].Type() != "STONE" || out[1].Quantity() != 16 {
		t.Fatalf("expected 16 STONE in slot 1, got [%s]", out[1])
	}
	if out[2].Type() != "STONE" || out[2].Quantity() != 6 {
		t.Fatalf("expected 6 STONE in slot 2, got [%s]", out[2])
	}
	for i := 3; i < len(out); i++ {
		if !out[i].IsEmpty() {
			t.Fatalf("expected slot %d to be empty, got [%s]", i, out[i])
		}
	}
	assertUnchanged(t, f.contents(t, f.player.Id()), playerSlots())

	cancelled := mb.GetAll()[message3.EnvEventTopicStatus]
	if len(cancelled) != 1 {
		t.Fatalf("expected 1 interaction status event, got %d", len(cancelled))
	}
	var se message3.StatusEvent[message3.CancelledStatusEventBody]
	if err = json.Unmarshal(cancelled[0].Value, &se); err != nil {
		t.Fatalf("Failed to decode status event: %v", err)
	}
	if se.Type != message3.StatusEventTypeCancelled || se.EventId != e.Id() || se.Body.ContainerId != f.chest.Id() {
		t.Fatalf("unexpected status event %+v", se)
	}
	if len(mb.GetAll()[message2.EnvEventTopicStatus]) != 1 {
		t.Fatalf("expected 1 container status event")
	}
}

func TestTrySortBottomContainer(t *testing.T) {
	f := newFixture(t)
	e := middleClick(27 + 15).Build()

	handled, err := f.p.TrySort(message.NewBuffer())(e, f.view)
	if err != nil || !handled {
		t.Fatalf("expected handled, got [%t] (%v)", handled, err)
	}

	out := f.contents(t, f.player.Id())
	if out[9].Type() != "COBBLESTONE" || out[10].Type() != "OAK_LOG" {
		t.Fatalf("unexpected storage order [%s] [%s]", out[9], out[10])
	}
	if !out[2].Equals(playerSlots()[2]) {
		t.Fatalf("hotbar slot changed to [%s]", out[2])
	}
	assertUnchanged(t, f.contents(t, f.chest.Id()), chestSlots())
}

func TestTrySortSkips(t *testing.T) {
	cases := []struct {
		name  string
		event *interaction.Event
	}{
		{"drag", middleClick(5).SetClick(interaction.ClickLeft).SetAction(interaction.ActionPlaceAll).Build()},
		{"already cancelled", middleClick(5).SetCancelled(true).Build()},
		{"not a player", middleClick(5).SetActorKind(interaction.ActorKindOther).Build()},
		{"result slot", middleClick(5).SetSlotType(interaction.SlotTypeResult).Build()},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t)
			wasCancelled := c.event.Cancelled()
			mb := message.NewBuffer()

			handled, err := f.p.TrySort(mb)(c.event, f.view)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if handled {
				t.Fatalf("expected skip")
			}
			if c.event.Cancelled() != wasCancelled {
				t.Fatalf("event cancellation changed")
			}
			if len(mb.GetAll()) != 0 {
				t.Fatalf("expected no messages")
			}
			assertUnchanged(t, f.contents(t, f.chest.Id()), chestSlots())
		})
	}
}

func TestTrySortPermissionDenied(t *testing.T) {
	f := newFixture(t)
	pp := permission.NewProcessor(testLogger(), context.Background(), f.db)
	if _, err := pp.Set(actorId, permission.NameSort, false); err != nil {
		t.Fatalf("Failed to set permission: %v", err)
	}

	e := middleClick(5).Build()
	handled, err := f.p.TrySort(message.NewBuffer())(e, f.view)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if handled || e.Cancelled() {
		t.Fatalf("expected skip for denied actor")
	}
	assertUnchanged(t, f.contents(t, f.chest.Id()), chestSlots())

	if _, err = pp.Set(actorId, permission.NameSort, true); err != nil {
		t.Fatalf("Failed to set permission: %v", err)
	}
	handled, err = f.p.TrySort(message.NewBuffer())(e, f.view)
	if err != nil || !handled {
		t.Fatalf("expected handled once allowed, got [%t] (%v)", handled, err)
	}
}

func TestTrySortMountWithoutStorage(t *testing.T) {
	f := newFixture(t)
	mount, err := f.cp.Create(message.NewBuffer())(container.KindMount, 2)
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}

	e := middleClick(1).Build()
	handled, err := f.p.TrySort(message.NewBuffer())(e, interaction.View{Top: mount.Id(), Bottom: f.player.Id()})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if handled || e.Cancelled() {
		t.Fatalf("expected skip for mount without storage")
	}
}

func TestTrySortUnknownContainer(t *testing.T) {
	f := newFixture(t)
	e := middleClick(5).Build()
	handled, err := f.p.TrySort(message.NewBuffer())(e, interaction.View{Top: uuid.New(), Bottom: f.player.Id()})
	if err != nil || handled || e.Cancelled() {
		t.Fatalf("expected silent skip, got [%t] [%t] (%v)", handled, e.Cancelled(), err)
	}
}

func TestTrySortLogsContainerLookupFailure(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	if err = permission.Migration(db); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}
	l, hook := test.NewNullLogger()

	e := middleClick(5).Build()
	p := interaction.NewProcessor(l, context.Background(), db)
	handled, err := p.TrySort(message.NewBuffer())(e, interaction.View{Top: uuid.New(), Bottom: uuid.New()})
	if err == nil || handled || e.Cancelled() {
		t.Fatalf("expected lookup failure, got [%t] [%t] (%v)", handled, e.Cancelled(), err)
	}
	found := false
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.ErrorLevel {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected lookup failure to be logged at error level")
	}
}
