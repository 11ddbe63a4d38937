package ordered

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMap(t *testing.T) {
	Convey("Given an ordered map", t, func() {
		m := New[string]()
		m.Set("$primary", "$blue")
		m.Set("$link", "$blue")
		m.Set("$info", "$cyan")

		Convey("Keys come back in insertion order", func() {
			So(m.Keys(), ShouldResemble, []string{"$primary", "$link", "$info"})
		})

		Convey("Overwriting keeps the position", func() {
			m.Set("$primary", "#3498db")
			So(m.Keys(), ShouldResemble, []string{"$primary", "$link", "$info"})
			v, ok := m.Get("$primary")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "#3498db")
		})

		Convey("SetIfAbsent keeps the first value", func() {
			So(m.SetIfAbsent("$link", "#000"), ShouldBeFalse)
			So(m.SetIfAbsent("$danger", "$red"), ShouldBeTrue)
			v, _ := m.Get("$link")
			So(v, ShouldEqual, "$blue")
			So(m.Len(), ShouldEqual, 4)
		})

		Convey("Clone is independent", func() {
			clone := m.Clone()
			clone.Set("$primary", "red")
			v, _ := m.Get("$primary")
			So(v, ShouldEqual, "$blue")
			So(clone.Keys(), ShouldResemble, m.Keys())
		})

		Convey("JSON keeps the order both ways", func() {
			data, err := json.Marshal(m)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `{"$primary":"$blue","$link":"$blue","$info":"$cyan"}`)

			decoded := New[string]()
			So(json.Unmarshal(data, decoded), ShouldBeNil)
			So(decoded.Keys(), ShouldResemble, m.Keys())
		})

		Convey("The schema describes string values", func() {
			schema := Map[string]{}.JSONSchema()
			So(schema.Type, ShouldEqual, "object")
			So(schema.AdditionalProperties.Type, ShouldEqual, "string")
		})
	})
}
