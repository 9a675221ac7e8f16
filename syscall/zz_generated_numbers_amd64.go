package syscall

// SYS_<NAME> constants for x86_64, generated from table.go's Archs maps by
// tools/gensyscalls. Bit-exact with the kernel's per-arch syscall numbering
// for every syscall this module's table carries a row for.
const (
	SYS_ACCEPT4         uint64 = 288
	SYS_BIND            uint64 = 49
	SYS_BRK             uint64 = 12
	SYS_CAPGET          uint64 = 125
	SYS_CAPSET          uint64 = 126
	SYS_CHDIR           uint64 = 80
	SYS_CLOCK_GETTIME   uint64 = 228
	SYS_CLOCK_NANOSLEEP uint64 = 230
	SYS_CLONE           uint64 = 56
	SYS_CLONE3          uint64 = 435
	SYS_CLOSE           uint64 = 3
	SYS_CLOSE_RANGE     uint64 = 436
	SYS_CONNECT         uint64 = 42
	SYS_DUP3            uint64 = 292
	SYS_EXECVE          uint64 = 59
	SYS_EXECVEAT        uint64 = 322
	SYS_EXIT            uint64 = 60
	SYS_EXIT_GROUP      uint64 = 231
	SYS_FCNTL           uint64 = 72
	SYS_FORK            uint64 = 57
	SYS_FSTAT           uint64 = 5
	SYS_FSTATFS         uint64 = 138
	SYS_FUTEX           uint64 = 202
	SYS_GETCWD          uint64 = 79
	SYS_GETDENTS64      uint64 = 217
	SYS_GETEGID         uint64 = 108
	SYS_GETEUID         uint64 = 107
	SYS_GETGID          uint64 = 104
	SYS_GETPID          uint64 = 39
	SYS_GETRANDOM       uint64 = 318
	SYS_GETSOCKOPT      uint64 = 55
	SYS_GETTID          uint64 = 186
	SYS_GETUID          uint64 = 102
	SYS_IOCTL           uint64 = 16
	SYS_KILL            uint64 = 62
	SYS_LSTAT           uint64 = 6
	SYS_MKDIRAT         uint64 = 258
	SYS_MMAP            uint64 = 9
	SYS_MOUNT           uint64 = 165
	SYS_MPROTECT        uint64 = 10
	SYS_MUNMAP          uint64 = 11
	SYS_NANOSLEEP       uint64 = 35
	SYS_NEWFSTATAT      uint64 = 262
	SYS_OPENAT          uint64 = 257
	SYS_OPENAT2         uint64 = 437
	SYS_PIPE2           uint64 = 293
	SYS_PIVOT_ROOT      uint64 = 155
	SYS_PRCTL           uint64 = 157
	SYS_PTRACE          uint64 = 101
	SYS_READ            uint64 = 0
	SYS_READLINKAT      uint64 = 267
	SYS_RECVFROM        uint64 = 45
	SYS_RENAMEAT2       uint64 = 316
	SYS_RSEQ            uint64 = 334
	SYS_RT_SIGACTION    uint64 = 13
	SYS_RT_SIGPROCMASK  uint64 = 14
	SYS_RT_SIGRETURN    uint64 = 15
	SYS_SENDTO          uint64 = 44
	SYS_SETSOCKOPT      uint64 = 54
	SYS_SOCKET          uint64 = 41
	SYS_STATFS          uint64 = 137
	SYS_STATX           uint64 = 332
	SYS_SYMLINKAT       uint64 = 266
	SYS_TGKILL          uint64 = 234
	SYS_UMOUNT2         uint64 = 166
	SYS_UNAME           uint64 = 63
	SYS_UNLINKAT        uint64 = 263
	SYS_VFORK           uint64 = 58
	SYS_WAIT4           uint64 = 61
	SYS_WRITE           uint64 = 1
)
