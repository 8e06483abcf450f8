package config

import (
	"testing"

	"github.com/marquee-cli/marquee/filesystem"
	"github.com/marquee-cli/marquee/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should register every defined key exactly once", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Should default to the interaction timings of the player", func() {
			_ = Setup()
			So(viper.GetInt(key.GestureDoubleTapWindow), ShouldEqual, 300)
			So(viper.GetInt(key.GestureSeekDebounce), ShouldEqual, 800)
			So(viper.GetInt(key.OverlayHideAfter), ShouldEqual, 4000)
			So(viper.GetString(key.PlayerForceURL), ShouldBeEmpty)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("gesture.seek.step")
			So(result, ShouldEqual, "gesture_seek_step")
		})

		Convey("Env should carry the application prefix", func() {
			field := Default[key.PlayerForceURL]
			So(field.Env(), ShouldEqual, "MARQUEE_PLAYER_FORCE_URL")
		})
	})
}
