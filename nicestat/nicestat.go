// Copyright 2026 The libkiss Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package nicestat wraps the stat family of system calls, translating OS
// error codes into a closed set of sentinel errors and raw mode bits into a
// small file classification. Callers match the sentinels with errors.Is.
package nicestat

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Mode classifies a file.
type Mode int

const (
	Regular Mode = iota
	Directory
	Symlink
	BlockDevice
	CharDevice
	Socket
	FIFO
	Other
)

// String returns an uncapitalised description of the mode.
func (m Mode) String() string {
	switch m {
	case Regular:
		return "regular file"
	case Directory:
		return "directory"
	case Symlink:
		return "symbolic link"
	case BlockDevice:
		return "block device"
	case CharDevice:
		return "character device"
	case Socket:
		return "socket"
	case FIFO:
		return "FIFO/pipe"
	case Other:
		return "unknown file type"
	}
	return "<unhandled file type>"
}

// Info is the subset of stat results the package reports.
type Info struct {
	Mode  Mode
	User  uint32
	Group uint32
	Size  int64
}

// The stat errors callers are expected to handle. Anything the OS reports
// beyond these is passed through untranslated.
var (
	ErrNoMemory      = errors.New("out of memory")
	ErrNotExist      = errors.New("file does not exist")
	ErrAccess        = errors.New("permission denied")
	ErrOverflow      = errors.New("field overflow")
	ErrNotDir        = errors.New("not a directory")
	ErrNameTooLong   = errors.New("name too long")
	ErrLoop          = errors.New("too many symbolic links")
	ErrBadAddress    = errors.New("bad address")
	ErrBadDescriptor = errors.New("bad file descriptor")
	ErrBadFlags      = errors.New("bad flags")
)

// Stat returns information about the file at path, following symbolic
// links.
func Stat(path string) (Info, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return Info{}, fmt.Errorf("stat %s: %w", path, translate(err))
	}
	return translateStat(&st), nil
}

// Lstat is Stat without following a trailing symbolic link.
func Lstat(path string) (Info, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return Info{}, fmt.Errorf("lstat %s: %w", path, translate(err))
	}
	return translateStat(&st), nil
}

// Fstat returns information about an open file descriptor.
func Fstat(fd int) (Info, error) {
	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		return Info{}, fmt.Errorf("fstat fd %d: %w", fd, translate(err))
	}
	return translateStat(&st), nil
}

func translate(err error) error {
	switch err {
	case unix.ENOMEM:
		return ErrNoMemory
	case unix.ENOENT:
		return ErrNotExist
	case unix.EACCES:
		return ErrAccess
	case unix.EOVERFLOW:
		return ErrOverflow
	case unix.ENOTDIR:
		return ErrNotDir
	case unix.ENAMETOOLONG:
		return ErrNameTooLong
	case unix.ELOOP:
		return ErrLoop
	case unix.EFAULT:
		return ErrBadAddress
	case unix.EBADF:
		return ErrBadDescriptor
	case unix.EINVAL:
		return ErrBadFlags
	default:
		return err
	}
}

func translateStat(st *unix.Stat_t) Info {
	var mode Mode
	switch st.Mode & unix.S_IFMT {
	case unix.S_IFREG:
		mode = Regular
	case unix.S_IFDIR:
		mode = Directory
	case unix.S_IFLNK:
		mode = Symlink
	case unix.S_IFBLK:
		mode = BlockDevice
	case unix.S_IFCHR:
		mode = CharDevice
	case unix.S_IFSOCK:
		mode = Socket
	case unix.S_IFIFO:
		mode = FIFO
	default:
		mode = Other
	}
	return Info{
		Mode:  mode,
		User:  st.Uid,
		Group: st.Gid,
		Size:  st.Size,
	}
}
